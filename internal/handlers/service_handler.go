package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"castpro_backend/internal/services"
	"castpro_backend/internal/services/dto"
	"castpro_backend/pkg/apperrors"
)

type ServiceHandler struct {
	BaseHandler
	catalogService services.ServiceCatalogService
}

func NewServiceHandler(base BaseHandler, catalogService services.ServiceCatalogService) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *ServiceHandler) List(c *gin.Context) {
	items, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"services": items})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req dto.ServiceRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	service, err := h.catalogService.Create(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req dto.ServiceRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	if req.ID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("ID is required"))
		return
	}

	service, err := h.catalogService.Update(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"service": service})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Service deleted")
}
