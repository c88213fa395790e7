package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harir2002/cyber-resilience-Quiz/internal/response"
	"github.com/harir2002/cyber-resilience-Quiz/internal/service"
)

type SchemaHandler struct {
	schemaService *service.SchemaService
}

func NewSchemaHandler(schemaService *service.SchemaService) *SchemaHandler {
	return &SchemaHandler{schemaService: schemaService}
}

// GetSchema godoc
// GET /api/v1/questionnaire/schema
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	payload := h.schemaService.Payload(c.Request.Context())
	response.Success(c, http.StatusOK, payload)
}

// GetSections godoc
// GET /api/v1/questionnaire/sections
func (h *SchemaHandler) GetSections(c *gin.Context) {
	sections := h.schemaService.Sections()
	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}
