package models

// AdminUser is a back-office account. Login accepts either the username
// or the email by exact string equality.
type AdminUser struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}
