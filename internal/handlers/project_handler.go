package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"castpro_backend/internal/services"
	"castpro_backend/internal/services/dto"
	"castpro_backend/pkg/apperrors"
)

type ProjectHandler struct {
	BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    base,
		projectService: projectService,
	}
}

// Submit is the public quote request endpoint. File descriptors come
// pre-uploaded through UploadFiles.
func (h *ProjectHandler) Submit(c *gin.Context) {
	var req dto.SubmitProjectRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	project, err := h.projectService.Submit(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"message": "Project request submitted successfully",
		"id":      project.ID,
	})
}

// UploadFiles stores project attachments ahead of form submission and
// returns their descriptors. A policy rejection aborts the whole batch.
func (h *ProjectHandler) UploadFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid multipart form"))
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("No files provided"))
		return
	}

	descriptors := make([]interface{}, 0, len(headers))
	for _, file := range uploadFiles(headers) {
		descriptor, err := h.projectService.UploadFile(c.Request.Context(), file)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		descriptors = append(descriptors, descriptor)
	}

	respondOK(c, http.StatusOK, gin.H{"files": descriptors})
}

// List returns projects for the admin panel, optionally filtered.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context(),
		c.Query("search"), c.Query("status"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"projects": projects})
}

// UpdateStatus moves a project to a new review state.
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.projectService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Status updated")
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Project deleted")
}
