package dto

// ServiceRequest creates or updates a catalog entry. ID is required for
// updates only.
type ServiceRequest struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required"`
	Subtitle     string   `json:"subtitle"`
	Description  string   `json:"description" validate:"required"`
	Features     []string `json:"features"`
	Applications string   `json:"applications"`
	Icon         string   `json:"icon"`
	Gradient     string   `json:"gradient"`
	IsActive     bool     `json:"is_active"`
	SortOrder    int      `json:"sort_order"`
}

// CareerListingRequest creates or updates a listing. ID is required for
// updates only.
type CareerListingRequest struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=job internship"`
	Location     string   `json:"location" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Requirements []string `json:"requirements"`
	IsActive     bool     `json:"is_active"`
}

// ApplicationRequest carries the career application form fields; the
// files arrive alongside as multipart parts.
type ApplicationRequest struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone"`
	Message string `form:"message"`
}

// StatusUpdateRequest changes an entity's status. Any status in the
// entity's enum may follow any other.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}
