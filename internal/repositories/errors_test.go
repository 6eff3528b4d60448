package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestOrderClause_AllowlistedColumn(t *testing.T) {
	allowed := map[string]bool{"created_at": true, "name": true}

	assert.Equal(t, "name ASC", orderClause(allowed, "name", false))
	assert.Equal(t, "name DESC", orderClause(allowed, "name", true))
}

func TestOrderClause_UnknownColumnFallsBack(t *testing.T) {
	allowed := map[string]bool{"created_at": true}

	// The clause is interpolated into SQL, so anything off the
	// allowlist must collapse to the safe default.
	assert.Equal(t, "created_at DESC", orderClause(allowed, "name; DROP TABLE projects", true))
	assert.Equal(t, "created_at ASC", orderClause(allowed, "", false))
	assert.Equal(t, "created_at DESC", orderClause(allowed, "status", true))
}

func TestTranslateError(t *testing.T) {
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), ErrNotFound)

	other := errors.New("connection refused")
	assert.Equal(t, other, translateError(other))
	assert.NoError(t, translateError(nil))
}
