package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"castpro_backend/internal/auth"
	"castpro_backend/internal/services"
	"castpro_backend/internal/services/dto"
	"castpro_backend/pkg/apperrors"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
	sessionTTL  int // seconds, for the cookie max-age
	secureOnly  bool
}

func NewAuthHandler(base BaseHandler, authService services.AuthService, sessionTTLSeconds int, secureOnly bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		sessionTTL:  sessionTTLSeconds,
		secureOnly:  secureOnly,
	}
}

// Login verifies credentials and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Username and password are required"))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	// HttpOnly keeps the token out of reach of page scripts.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, token, h.sessionTTL, "/", "", h.secureOnly, true)
	respondMessage(c, http.StatusOK, "Login successful")
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookieName, "", -1, "/", "", h.secureOnly, true)
	respondMessage(c, http.StatusOK, "Logged out")
}
