package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"doclens/internal/port"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, input port.AnalyzeInput) (json.RawMessage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
