package services

import (
	"strings"

	"castpro_backend/internal/models"
)

// Submission filtering is done in memory over the full list, matching
// how the admin panel consumes it. Search is a case-insensitive
// substring match; status "all" or "" disables the status filter.

func matchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func statusFilterActive(status string) bool {
	return status != "" && status != "all"
}

// FilterProjects narrows a project list by free-text search over name,
// email and company, and by exact status.
func FilterProjects(projects []models.Project, search, status string) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		company := ""
		if p.Company != nil {
			company = *p.Company
		}
		if !matchesSearch(search, p.Name, p.Email, company) {
			continue
		}
		if statusFilterActive(status) && string(p.Status) != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterContacts narrows a contact list by free-text search over name
// and email, and by exact status.
func FilterContacts(contacts []models.Contact, search, status string) []models.Contact {
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if !matchesSearch(search, c.Name, c.Email) {
			continue
		}
		if statusFilterActive(status) && string(c.Status) != status {
			continue
		}
		out = append(out, c)
	}
	return out
}
