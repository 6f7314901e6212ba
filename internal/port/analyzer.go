package port

import "context"

// AnalyzeInput carries one uploaded document to the inference backend.
type AnalyzeInput struct {
	FileBytes   []byte
	ContentType string
	Filename    string
}

// DocumentAnalyzer abstracts the multimodal inference backend. It returns
// the raw reply text; interpreting that text is the caller's concern.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, input AnalyzeInput) (string, error)
}
