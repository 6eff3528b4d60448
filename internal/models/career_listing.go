package models

import (
	"github.com/lib/pq"
)

// ListingType distinguishes full positions from internships.
type ListingType string

const (
	ListingTypeJob        ListingType = "job"
	ListingTypeInternship ListingType = "internship"
)

var ListingTypes = []ListingType{ListingTypeJob, ListingTypeInternship}

func (t ListingType) Valid() bool {
	for _, v := range ListingTypes {
		if t == v {
			return true
		}
	}
	return false
}

// CareerListing is an open position. Admin-managed; publicly readable
// only while active.
type CareerListing struct {
	BaseModel
	Title        string         `gorm:"not null" json:"title"`
	Type         ListingType    `gorm:"not null" json:"type"`
	Location     string         `gorm:"not null" json:"location"`
	Description  string         `gorm:"not null" json:"description"`
	Requirements pq.StringArray `gorm:"type:text[]" json:"requirements"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
}
