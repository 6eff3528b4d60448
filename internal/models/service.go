package models

import (
	"github.com/lib/pq"
)

// Service is one entry of the public service catalog. Admin-managed;
// there is no public write path.
type Service struct {
	BaseModel
	Title        string         `gorm:"not null" json:"title"`
	Subtitle     *string        `json:"subtitle,omitempty"`
	Description  string         `gorm:"not null" json:"description"`
	Features     pq.StringArray `gorm:"type:text[]" json:"features"`
	Applications *string        `json:"applications,omitempty"`
	Icon         *string        `json:"icon,omitempty"`
	Gradient     *string        `json:"gradient,omitempty"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	SortOrder    int            `gorm:"not null;default:0" json:"sort_order"`
}
