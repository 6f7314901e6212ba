package analyzer

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON locates a JSON candidate inside reply text. It prefers the
// interior of a fenced code block; otherwise it takes the span from the
// first "{" through the last "}". The boolean reports whether a candidate
// was found.
//
// This is a heuristic, not a parser: it does not balance braces, so a reply
// with multiple unrelated brace pairs can yield a slice that later fails to
// parse. Callers are expected to fall back when that happens.
func ExtractJSON(text string) (string, bool) {
	if text == "" {
		return "", false
	}

	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(text[start : end+1]), true
	}

	return "", false
}
