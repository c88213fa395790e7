package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/harir2002/cyber-resilience-Quiz/internal/model"
	"github.com/harir2002/cyber-resilience-Quiz/internal/response"
	"github.com/harir2002/cyber-resilience-Quiz/internal/service"
	"github.com/harir2002/cyber-resilience-Quiz/internal/validator"
)

type AssessmentHandler struct {
	assessmentService *service.AssessmentService
	statsService      *service.StatsService
}

func NewAssessmentHandler(assessmentService *service.AssessmentService, statsService *service.StatsService) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentService: assessmentService,
		statsService:      statsService,
	}
}

// CreateCompany godoc
// POST /api/v1/company
// Registers a company and opens a new assessment.
func (h *AssessmentHandler) CreateCompany(c *gin.Context) {
	var req model.CreateCompanyRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	company, assessment, err := h.assessmentService.CreateCompany(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"company":       company,
		"assessment_id": assessment.ID,
	})
}

// SaveResponses godoc
// POST /api/v1/assessments/:assessment_id/responses
// Incrementally saves answers before final submission.
func (h *AssessmentHandler) SaveResponses(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("assessment_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SaveResponsesRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.assessmentService.SaveResponses(c.Request.Context(), assessmentID, &req); err != nil {
		response.Fail(c, statusFor(err), service.ErrCodeFor(err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"saved": len(req.Responses)})
}

// Submit godoc
// POST /api/v1/assessments/:assessment_id/submit
// Scores the assessment and returns the full result.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("assessment_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	// The response map is optional: an empty body submits whatever was
	// saved incrementally.
	var req model.SubmitAssessmentRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.assessmentService.Submit(c.Request.Context(), assessmentID, req.Responses)
	if err != nil {
		response.Fail(c, statusFor(err), service.ErrCodeFor(err))
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetAssessment godoc
// GET /api/v1/assessments/:assessment_id
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	assessmentID, err := uuid.Parse(c.Param("assessment_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	result, err := h.assessmentService.Get(c.Request.Context(), assessmentID)
	if err != nil {
		response.Fail(c, statusFor(err), service.ErrCodeFor(err))
		return
	}

	response.Success(c, http.StatusOK, result)
}

// GetStats godoc
// GET /api/v1/stats
func (h *AssessmentHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyResponses), errors.Is(err, service.ErrUnknownQuestion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
