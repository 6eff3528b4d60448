package dto

import (
	"castpro_backend/internal/models"
)

// DashboardSummary is the count row shown at the top of the admin panel.
type DashboardSummary struct {
	TotalProjects     int `json:"total_projects"`
	NewProjects       int `json:"new_projects"`
	TotalContacts     int `json:"total_contacts"`
	NewContacts       int `json:"new_contacts"`
	TotalServices     int `json:"total_services"`
	ActiveListings    int `json:"active_listings"`
	TotalListings     int `json:"total_listings"`
	TotalApplications int `json:"total_applications"`
}

// DashboardData aggregates every admin collection in one response. The
// five collections are fetched independently: a failed fetch leaves its
// slice empty and records the failure in FetchErrors instead of failing
// the whole response.
type DashboardData struct {
	Projects       []models.Project       `json:"projects"`
	Contacts       []models.Contact       `json:"contacts"`
	Services       []models.Service       `json:"services"`
	CareerListings []models.CareerListing `json:"career_listings"`
	Applications   []models.Application   `json:"applications"`
	Summary        DashboardSummary       `json:"summary"`
	FetchErrors    map[string]string      `json:"fetch_errors,omitempty"`
}
