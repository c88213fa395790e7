package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harir2002/cyber-resilience-Quiz/internal/response"
	"github.com/harir2002/cyber-resilience-Quiz/internal/service"
)

// AdminHandler serves the reporting surface over collected assessments.
type AdminHandler struct {
	assessmentService *service.AssessmentService
	reportService     *service.ReportService
}

func NewAdminHandler(assessmentService *service.AssessmentService, reportService *service.ReportService) *AdminHandler {
	return &AdminHandler{
		assessmentService: assessmentService,
		reportService:     reportService,
	}
}

// ListAssessments godoc
// GET /api/v1/admin/assessments?page=1&per_page=20&completed=true
func (h *AdminHandler) ListAssessments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	completedOnly := c.DefaultQuery("completed", "false") == "true"

	items, pagination, err := h.assessmentService.List(c.Request.Context(), page, perPage, completedOnly)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"assessments": items}, pagination)
}

// ExportAssessments godoc
// GET /api/v1/admin/assessments/export
// Streams an xlsx workbook of all completed assessments.
func (h *AdminHandler) ExportAssessments(c *gin.Context) {
	data, err := h.reportService.ExportAssessmentsXLSX(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	filename := fmt.Sprintf("assessments-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
