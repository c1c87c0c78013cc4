// Package handler implements the HTTP handlers for the analysis API.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poligap/poligap/internal/app/dto"
	"github.com/poligap/poligap/internal/app/service"
	"github.com/poligap/poligap/internal/observability/logging"
	"github.com/poligap/poligap/pkg/errors"
	"github.com/poligap/poligap/pkg/validator"
)

// AnalysisHandler handles HTTP requests for document analysis operations.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	logger          logging.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler instance.
func NewAnalysisHandler(analysisService service.AnalysisService, logger logging.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// Analyze handles POST /api/v1/analysis
// @Summary Analyze a compliance document
// @Description Benchmark the document against regulatory frameworks and extract entities
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Analysis request"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/v1/analysis [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithContext(ctx).Warn("failed to bind analyze request", logging.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errors.ErrInvalidRequest.Code,
			Message: "Invalid request body: " + validator.Message(err),
		})
		return
	}

	resp, err := h.analysisService.Analyze(ctx, &req)
	if err != nil {
		h.logger.WithContext(ctx).Error("analysis failed", logging.Error(err))
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Suggest handles POST /api/v1/analysis/suggest
// @Summary Suggest applicable compliance frameworks
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.SuggestRequest true "Suggestion request"
// @Success 200 {object} suggestion.SuggestionBundle
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/analysis/suggest [post]
func (h *AnalysisHandler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errors.ErrInvalidRequest.Code,
			Message: "Invalid request body: " + validator.Message(err),
		})
		return
	}

	bundle, err := h.analysisService.SuggestFrameworks(ctx, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// Extract handles POST /api/v1/analysis/extract
// @Summary Extract structured entities from a document
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.ExtractRequest true "Extraction request"
// @Success 200 {object} extraction.EntityBundle
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/analysis/extract [post]
func (h *AnalysisHandler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errors.ErrInvalidRequest.Code,
			Message: "Invalid request body: " + validator.Message(err),
		})
		return
	}

	bundle, err := h.analysisService.ExtractEntities(ctx, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// Validate handles POST /api/v1/analysis/validate
// @Summary Validate frameworks against document content
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.ValidateRequest true "Validation request"
// @Success 200 {object} suggestion.ValidationBundle
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/analysis/validate [post]
func (h *AnalysisHandler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errors.ErrInvalidRequest.Code,
			Message: "Invalid request body: " + validator.Message(err),
		})
		return
	}

	bundle, err := h.analysisService.ValidateFrameworks(ctx, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// GetAnalysis handles GET /api/v1/analysis/:id
// @Summary Get a persisted analysis by id
// @Tags analysis
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/analysis/{id} [get]
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errors.ErrInvalidRequest.Code,
			Message: "Analysis ID is required",
		})
		return
	}

	resp, err := h.analysisService.GetAnalysis(ctx, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAnalyses handles GET /api/v1/analysis
// @Summary List persisted analyses
// @Tags analysis
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param industry query string false "Filter by industry"
// @Success 200 {object} dto.ListAnalysesResponse
// @Router /api/v1/analysis [get]
func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ListAnalysesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errors.ErrInvalidRequest.Code,
			Message: "Invalid query parameters: " + validator.Message(err),
		})
		return
	}

	resp, err := h.analysisService.ListAnalyses(ctx, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// handleServiceError maps service errors onto HTTP responses, preserving the
// structured code and status of AppErrors.
func handleServiceError(c *gin.Context, err error) {
	status := errors.GetHTTPStatus(err)
	code := errors.GetCode(err)

	message := "Internal server error"
	if appErr, ok := err.(*errors.AppError); ok {
		message = appErr.Message
	}

	c.JSON(status, dto.ErrorResponse{Code: code, Message: message})
}
