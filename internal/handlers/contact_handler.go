package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"castpro_backend/internal/services"
	"castpro_backend/internal/services/dto"
	"castpro_backend/pkg/apperrors"
)

type ContactHandler struct {
	BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler:    base,
		contactService: contactService,
	}
}

// Submit is the public contact form endpoint.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"id":      contact.ID,
	})
}

// List returns contacts for the admin panel, optionally filtered.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.contactService.List(c.Request.Context(),
		c.Query("search"), c.Query("status"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"contacts": contacts})
}

// UpdateStatus moves a contact to a new handling state.
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.contactService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Status updated")
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Contact deleted")
}
