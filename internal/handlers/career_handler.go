package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"castpro_backend/internal/services"
	"castpro_backend/internal/services/dto"
	"castpro_backend/pkg/apperrors"
)

type CareerHandler struct {
	BaseHandler
	careerService      services.CareerService
	applicationService services.ApplicationService
}

func NewCareerHandler(base BaseHandler, careerService services.CareerService, applicationService services.ApplicationService) *CareerHandler {
	return &CareerHandler{
		BaseHandler:        base,
		careerService:      careerService,
		applicationService: applicationService,
	}
}

// ListActive is the public career page: active listings only.
func (h *CareerHandler) ListActive(c *gin.Context) {
	listings, err := h.careerService.ListActiveListings(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"listings": listings})
}

// Apply is the public application endpoint: multipart form fields plus
// any number of attachments under "files".
func (h *CareerHandler) Apply(c *gin.Context) {
	var req dto.ApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid form data"))
		return
	}
	if !h.Validate(c, &req) {
		return
	}

	var files []dto.UploadFile
	if form, err := c.MultipartForm(); err == nil {
		files = uploadFiles(form.File["files"])
	}

	application, rejected, err := h.applicationService.Apply(c.Request.Context(), req, files)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	payload := gin.H{
		"message": "Application submitted successfully",
		"id":      application.ID,
	}
	if len(rejected) > 0 {
		payload["rejected_files"] = rejected
	}
	respondOK(c, http.StatusCreated, payload)
}

// ListListings returns every listing for the admin panel.
func (h *CareerHandler) ListListings(c *gin.Context) {
	listings, err := h.careerService.ListListings(c.Request.Context())
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"listings": listings})
}

func (h *CareerHandler) CreateListing(c *gin.Context) {
	var req dto.CareerListingRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	listing, err := h.careerService.CreateListing(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"listing": listing})
}

func (h *CareerHandler) UpdateListing(c *gin.Context) {
	var req dto.CareerListingRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	if req.ID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("ID is required"))
		return
	}

	listing, err := h.careerService.UpdateListing(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"listing": listing})
}

// DeleteListing takes the target ID as a query parameter.
func (h *CareerHandler) DeleteListing(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("ID is required"))
		return
	}

	if err := h.careerService.DeleteListing(c.Request.Context(), id); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Career listing deleted")
}
