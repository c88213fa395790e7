package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/harir2002/cyber-resilience-Quiz/internal/config"
	"github.com/harir2002/cyber-resilience-Quiz/internal/response"
)

// ConfigHandler serves the static frontend configuration: branding and
// the dropdown options for the company intake form.
type ConfigHandler struct{}

func NewConfigHandler() *ConfigHandler {
	return &ConfigHandler{}
}

// GetConfig godoc
// GET /api/v1/config
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"app":           config.App(),
		"brand_colors":  config.BrandColors(),
		"industries":    config.Industries(),
		"regions":       config.Regions(),
		"company_sizes": config.CompanySizes(),
	})
}
