package routes

import (
	"github.com/gin-gonic/gin"

	"castpro_backend/internal/handlers"
	"castpro_backend/internal/middleware"
)

// Register wires every endpoint onto the router. The admin group sits
// behind the session middleware; everything else is public.
func Register(r *gin.Engine, h *handlers.AppHandlers, jwtSecret string) {
	api := r.Group("/api")

	// Public site endpoints.
	api.POST("/contact", h.Contact.Submit)
	api.POST("/submit-project", h.Project.Submit)
	api.POST("/submit-project/files", h.Project.UploadFiles)
	api.GET("/career-listings", h.Career.ListActive)
	api.POST("/career/applications", h.Career.Apply)

	api.POST("/admin/login", h.Auth.Login)
	api.POST("/admin/logout", h.Auth.Logout)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminSessionMiddleware(jwtSecret))
	{
		admin.GET("/dashboard", h.Dashboard.Load)

		admin.GET("/projects", h.Project.List)
		admin.PATCH("/projects/:id/status", h.Project.UpdateStatus)
		admin.DELETE("/projects/:id", h.Project.Delete)

		admin.GET("/contacts", h.Contact.List)
		admin.PATCH("/contacts/:id/status", h.Contact.UpdateStatus)
		admin.DELETE("/contacts/:id", h.Contact.Delete)

		admin.GET("/services", h.Service.List)
		admin.POST("/services", h.Service.Create)
		admin.PUT("/services", h.Service.Update)
		admin.DELETE("/services/:id", h.Service.Delete)

		// Listing deletion takes ?id= rather than a path parameter, the
		// contract the admin panel already speaks.
		admin.GET("/career-listings", h.Career.ListListings)
		admin.POST("/career-listings", h.Career.CreateListing)
		admin.PUT("/career-listings", h.Career.UpdateListing)
		admin.DELETE("/career-listings", h.Career.DeleteListing)

		admin.GET("/applications", h.Application.List)
		admin.GET("/applications/:id/files/url", h.Application.SignFileURL)
		admin.DELETE("/applications/:id/files", h.Application.DeleteFile)
		admin.DELETE("/applications/:id", h.Application.Delete)
	}
}
