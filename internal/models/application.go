package models

// Application is a job application submitted through the career page.
// Its files live in the private career-applications bucket, namespaced
// by the application ID assigned before upload.
type Application struct {
	BaseModel
	Name    string   `gorm:"not null" json:"name"`
	Email   string   `gorm:"not null" json:"email"`
	Phone   *string  `json:"phone,omitempty"`
	Message *string  `json:"message,omitempty"`
	Files   FileList `gorm:"type:jsonb" json:"files"`
}
