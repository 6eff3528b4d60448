package handlers

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"castpro_backend/internal/services/dto"
	"castpro_backend/internal/validator"
	"castpro_backend/pkg/apperrors"
)

// BaseHandler carries the helpers shared by every handler.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidate binds the JSON body into req and runs validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.Validate(c, req)
}

// Validate runs struct validation only, for requests bound elsewhere
// (form fields, query params).
func (h *BaseHandler) Validate(c *gin.Context, req interface{}) bool {
	if err := h.validator.Validate(req); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}
	return true
}

// respondOK writes the success envelope with extra payload fields.
func respondOK(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// respondMessage writes the plain success/message envelope.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

// requireID pulls the :id path parameter, writing a 400 when missing.
func requireID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("ID is required"))
		return "", false
	}
	return id, true
}

// uploadFiles adapts multipart headers into service-level upload files.
func uploadFiles(headers []*multipart.FileHeader) []dto.UploadFile {
	files := make([]dto.UploadFile, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		files = append(files, dto.UploadFile{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return files
}
