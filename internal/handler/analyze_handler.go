package handler

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"doclens/internal/domain"
	"doclens/internal/port"
	"doclens/internal/service"
)

// AnalyzeHandler handles document analysis requests.
type AnalyzeHandler struct {
	analysisService service.AnalysisService
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analysisService service.AnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{analysisService: analysisService}
}

// Analyze handles POST /api/analyze
// @Summary Analyze an uploaded document
// @Description Upload a receipt, invoice, or other document (image or PDF) and receive a normalized JSON description
// @Tags analyze
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to analyze (image or PDF)"
// @Success 200 {object} APIResponse "Normalized document"
// @Failure 400 {object} ErrorResponse "No file uploaded"
// @Failure 500 {object} ErrorResponse "Configuration or inference failure"
// @Router /api/analyze [post]
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		HandleError(c, fmt.Errorf("reading uploaded file: %w", err))
		return
	}

	input := port.AnalyzeInput{
		FileBytes:   fileBytes,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
