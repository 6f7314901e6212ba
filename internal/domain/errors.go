package domain

import "errors"

var (
	ErrMissingFile   = errors.New("no file uploaded")
	ErrAPIKeyMissing = errors.New("analyzer API key is not configured")
)
