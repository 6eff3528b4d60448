package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a row does not exist, including deletes
// and status updates that touch zero rows. Callers deleting the same id
// twice get this same error both times.
var ErrNotFound = errors.New("record not found")

// translateError maps GORM errors onto repository errors.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Column allowlists for List ordering. Ordering is interpolated into
// SQL, so unknown columns fall back to created_at.
func orderClause(allowed map[string]bool, orderBy string, desc bool) string {
	if !allowed[orderBy] {
		orderBy = "created_at"
	}
	if desc {
		return orderBy + " DESC"
	}
	return orderBy + " ASC"
}
