package models

// ProjectStatus is the review state of a submitted project.
type ProjectStatus string

const (
	ProjectStatusNew       ProjectStatus = "new"
	ProjectStatusReviewed  ProjectStatus = "reviewed"
	ProjectStatusQuoted    ProjectStatus = "quoted"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ProjectStatuses lists every valid project status.
var ProjectStatuses = []ProjectStatus{
	ProjectStatusNew,
	ProjectStatusReviewed,
	ProjectStatusQuoted,
	ProjectStatusCompleted,
}

// Valid reports whether the status is a member of the enum. Any valid
// status may follow any other; there is no transition ordering.
func (s ProjectStatus) Valid() bool {
	for _, v := range ProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Project is a quote request submitted through the public form.
type Project struct {
	BaseModel
	Name               string        `gorm:"not null" json:"name"`
	Email              string        `gorm:"not null" json:"email"`
	Phone              *string       `json:"phone,omitempty"`
	Company            *string       `json:"company,omitempty"`
	ProjectDescription string        `gorm:"not null" json:"project_description"`
	Files              FileList      `gorm:"type:jsonb" json:"files"`
	Status             ProjectStatus `gorm:"not null;default:'new'" json:"status"`
}
