package models

// ContactStatus is the handling state of a contact message.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusResponded ContactStatus = "responded"
	ContactStatusClosed    ContactStatus = "closed"
)

// ContactStatuses lists every valid contact status.
var ContactStatuses = []ContactStatus{
	ContactStatusNew,
	ContactStatusResponded,
	ContactStatusClosed,
}

func (s ContactStatus) Valid() bool {
	for _, v := range ContactStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	BaseModel
	Name    string        `gorm:"not null" json:"name"`
	Email   string        `gorm:"not null" json:"email"`
	Message string        `gorm:"not null" json:"message"`
	Status  ContactStatus `gorm:"not null;default:'new'" json:"status"`
}
