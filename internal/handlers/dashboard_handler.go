package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"castpro_backend/internal/services"
	"castpro_backend/pkg/apperrors"
)

type DashboardHandler struct {
	BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

// Load returns the aggregated admin overview. Individual fetch failures
// are reported inside the payload, never as a failed response.
func (h *DashboardHandler) Load(c *gin.Context) {
	data, err := h.dashboardService.Load(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"data": data})
}
