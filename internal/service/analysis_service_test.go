package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"doclens/internal/port"
	"doclens/internal/service"
	"doclens/mocks"
)

func testInput() port.AnalyzeInput {
	return port.AnalyzeInput{
		FileBytes:   []byte("\xff\xd8\xff fake jpeg"),
		ContentType: "image/jpeg",
		Filename:    "receipt.jpg",
	}
}

func TestAnalysisService_Analyze_CleanJSONReply(t *testing.T) {
	reply := `{"document_type":"other","title":"T","summary":"S","notes":"N"}`

	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	mockAnalyzer.On("Analyze", mock.Anything, mock.AnythingOfType("port.AnalyzeInput")).
		Return(reply, nil)

	svc := service.NewAnalysisService(mockAnalyzer)
	result, err := svc.Analyze(context.Background(), testInput())

	require.NoError(t, err)
	assert.JSONEq(t, reply, string(result))
	mockAnalyzer.AssertExpectations(t)
}

func TestAnalysisService_Analyze_FencedReply(t *testing.T) {
	reply := "Here is the extraction:\n```json\n{\"document_type\":\"receipt\",\"total\":\"12.50\"}\n```"

	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	mockAnalyzer.On("Analyze", mock.Anything, mock.AnythingOfType("port.AnalyzeInput")).
		Return(reply, nil)

	svc := service.NewAnalysisService(mockAnalyzer)
	result, err := svc.Analyze(context.Background(), testInput())

	require.NoError(t, err)
	assert.JSONEq(t, `{"document_type":"receipt","total":"12.50"}`, string(result))
}

func TestAnalysisService_Analyze_ProseFallsBackToGenericDocument(t *testing.T) {
	prose := "This appears to be a photograph of a whiteboard. No structured data found."

	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	mockAnalyzer.On("Analyze", mock.Anything, mock.AnythingOfType("port.AnalyzeInput")).
		Return(prose, nil)

	svc := service.NewAnalysisService(mockAnalyzer)
	result, err := svc.Analyze(context.Background(), testInput())

	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(result, &doc))
	assert.Equal(t, "other", doc["document_type"])
	assert.Equal(t, "Analysis", doc["title"])
	assert.Equal(t, "", doc["summary"])
	assert.Equal(t, prose, doc["notes"], "the raw reply is preserved verbatim")
}

func TestAnalysisService_Analyze_MisslicedBracesFallBack(t *testing.T) {
	// Two unrelated brace pairs slice into a malformed candidate; the parse
	// failure degrades to the fallback document, never an error.
	reply := `I found {"a":1} and also {"b":2} in the document.`

	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	mockAnalyzer.On("Analyze", mock.Anything, mock.AnythingOfType("port.AnalyzeInput")).
		Return(reply, nil)

	svc := service.NewAnalysisService(mockAnalyzer)
	result, err := svc.Analyze(context.Background(), testInput())

	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(result, &doc))
	assert.Equal(t, "other", doc["document_type"])
	assert.Equal(t, reply, doc["notes"])
}

func TestAnalysisService_Analyze_AnalyzerErrorPropagates(t *testing.T) {
	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	mockAnalyzer.On("Analyze", mock.Anything, mock.AnythingOfType("port.AnalyzeInput")).
		Return("", errors.New("gemini API error (status 503): overloaded"))

	svc := service.NewAnalysisService(mockAnalyzer)
	result, err := svc.Analyze(context.Background(), testInput())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestAnalysisService_Analyze_Idempotent(t *testing.T) {
	reply := `{"document_type":"invoice","vendor_name":"Acme","total":"100.00"}`

	mockAnalyzer := new(mocks.MockDocumentAnalyzer)
	mockAnalyzer.On("Analyze", mock.Anything, mock.AnythingOfType("port.AnalyzeInput")).
		Return(reply, nil)

	svc := service.NewAnalysisService(mockAnalyzer)

	first, err := svc.Analyze(context.Background(), testInput())
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), testInput())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
