package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"castpro_backend/internal/models"
)

func TestContactUpdateStatus_BumpsUpdatedAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	createdAt := time.Now().Add(-time.Hour)
	mock.ExpectExec(`UPDATE "contacts" SET "status"=.+,"updated_at"=.+ WHERE id = .+`).
		WithArgs("responded", timeAfter{ref: createdAt}, "c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), "c1", models.ContactStatusResponded)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactUpdateStatus_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectExec(`UPDATE "contacts" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), "missing", models.ContactStatusClosed)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactDelete_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db)

	mock.ExpectExec(`DELETE FROM "contacts" WHERE id = .+`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
