package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"doclens/internal/analyzer"
	"doclens/internal/domain"
	"doclens/internal/port"
)

// fallbackTitle names the synthesized document produced when a reply cannot
// be parsed as JSON.
const fallbackTitle = "Analysis"

// AnalysisService defines the document analysis contract.
type AnalysisService interface {
	Analyze(ctx context.Context, input port.AnalyzeInput) (json.RawMessage, error)
}

type analysisService struct {
	analyzer port.DocumentAnalyzer
}

// NewAnalysisService creates a new AnalysisService implementation.
func NewAnalysisService(docAnalyzer port.DocumentAnalyzer) AnalysisService {
	return &analysisService{analyzer: docAnalyzer}
}

// Analyze forwards the upload to the inference backend and normalizes the
// reply. Once the backend has answered, this never fails: replies that do
// not parse as JSON degrade to a generic fallback document carrying the raw
// text, so every successful upload yields some structured response.
func (s *analysisService) Analyze(ctx context.Context, input port.AnalyzeInput) (json.RawMessage, error) {
	raw, err := s.analyzer.Analyze(ctx, input)
	if err != nil {
		return nil, err
	}

	candidate, found := analyzer.ExtractJSON(raw)
	if !found {
		candidate = raw
	}

	if json.Valid([]byte(candidate)) {
		return json.RawMessage(candidate), nil
	}

	log.Printf("analysisService.Analyze: reply for %q is not parseable JSON, degrading to fallback document (%d bytes of raw text)",
		input.Filename, len(raw))

	fallback := domain.GenericDocument{
		DocumentType: domain.DocumentTypeOther,
		Title:        fallbackTitle,
		Summary:      "",
		Notes:        raw,
	}
	payload, err := json.Marshal(fallback)
	if err != nil {
		return nil, fmt.Errorf("marshaling fallback document: %w", err)
	}
	return payload, nil
}
