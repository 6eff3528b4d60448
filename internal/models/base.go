package models

import (
	"time"
)

// BaseModel holds the columns shared by every table: a server-assigned
// uuid primary key and creation/update timestamps.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
