package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"castpro_backend/internal/services"
	"castpro_backend/pkg/apperrors"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

// List returns applications for the admin panel, newest first.
func (h *ApplicationHandler) List(c *gin.Context) {
	applications, err := h.applicationService.List(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"applications": applications})
}

// SignFileURL returns a temporary download link for one attachment.
func (h *ApplicationHandler) SignFileURL(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File path is required"))
		return
	}

	url, err := h.applicationService.SignFileURL(c.Request.Context(), c.Param("id"), path)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"url": url})
}

// DeleteFile removes one attachment from storage and the row's list.
func (h *ApplicationHandler) DeleteFile(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File path is required"))
		return
	}

	if err := h.applicationService.DeleteFile(c.Request.Context(), c.Param("id"), path); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "File deleted")
}

// Delete removes an application together with its stored files.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.applicationService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Application deleted")
}
