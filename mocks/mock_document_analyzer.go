package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"doclens/internal/port"
)

// MockDocumentAnalyzer is a mock implementation of port.DocumentAnalyzer.
type MockDocumentAnalyzer struct {
	mock.Mock
}

func (m *MockDocumentAnalyzer) Analyze(ctx context.Context, input port.AnalyzeInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
