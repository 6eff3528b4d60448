package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"castpro_backend/internal/models"
	"castpro_backend/internal/repositories"
	"castpro_backend/internal/services/dto"
	"castpro_backend/pkg/apperrors"
)

func TestApply_ConformingFilesStoredAndRecorded(t *testing.T) {
	var created *models.Application
	repo := &mockApplicationRepo{
		createFn: func(ctx context.Context, application *models.Application) error {
			created = application
			return nil
		},
	}
	store := newMockStorage()
	svc := NewApplicationService(repo, store, &mockNotifier{})

	resume := uploadFileFromString("resume.pdf", "application/pdf", "pdf bytes")

	application, rejected, err := svc.Apply(context.Background(), dto.ApplicationRequest{
		Name:  "Anna",
		Email: "anna@example.com",
	}, []dto.UploadFile{resume})

	require.NoError(t, err)
	assert.Empty(t, rejected)
	require.NotNil(t, created)
	require.Len(t, created.Files, 1)

	descriptor := created.Files[0]
	assert.Equal(t, "resume.pdf", descriptor.Name)
	assert.Equal(t, int64(len("pdf bytes")), descriptor.Size)
	assert.True(t, strings.HasPrefix(descriptor.Path, "applications/"+application.ID+"/"))
	// Private bucket files never carry a public URL.
	assert.Empty(t, descriptor.URL)
	assert.Contains(t, store.saved, descriptor.Path)
}

func TestApply_RejectsPerFileWhileOthersProceed(t *testing.T) {
	var created *models.Application
	repo := &mockApplicationRepo{
		createFn: func(ctx context.Context, application *models.Application) error {
			created = application
			return nil
		},
	}
	store := newMockStorage()
	svc := NewApplicationService(repo, store, &mockNotifier{})

	good := uploadFileFromString("resume.pdf", "application/pdf", "ok")
	bad := uploadFileFromString("malware.exe", "application/octet-stream", "nope")

	_, rejected, err := svc.Apply(context.Background(), dto.ApplicationRequest{
		Name:  "Anna",
		Email: "anna@example.com",
	}, []dto.UploadFile{bad, good})

	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, "malware.exe", rejected[0].Name)
	assert.Contains(t, rejected[0].Reason, "not allowed")

	require.NotNil(t, created)
	require.Len(t, created.Files, 1)
	assert.Equal(t, "resume.pdf", created.Files[0].Name)
}

func TestApply_NoFilesStillSucceeds(t *testing.T) {
	repo := &mockApplicationRepo{}
	svc := NewApplicationService(repo, newMockStorage(), &mockNotifier{})

	application, rejected, err := svc.Apply(context.Background(), dto.ApplicationRequest{
		Name:  "Anna",
		Email: "anna@example.com",
	}, nil)

	require.NoError(t, err)
	assert.Empty(t, rejected)
	assert.NotEmpty(t, application.ID)
}

func TestSignFileURL_RejectsForeignPath(t *testing.T) {
	repo := &mockApplicationRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Application, error) {
			app := &models.Application{
				Name:  "Anna",
				Email: "anna@example.com",
				Files: models.FileList{{Name: "resume.pdf", Path: "applications/a1/resume.pdf"}},
			}
			app.ID = "a1"
			return app, nil
		},
	}
	svc := NewApplicationService(repo, newMockStorage(), &mockNotifier{})

	_, err := svc.SignFileURL(context.Background(), "a1", "applications/other/secret.pdf")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestSignFileURL_SignsOwnedPath(t *testing.T) {
	repo := &mockApplicationRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Application, error) {
			app := &models.Application{
				Files: models.FileList{{Name: "resume.pdf", Path: "applications/a1/resume.pdf"}},
			}
			app.ID = "a1"
			return app, nil
		},
	}
	svc := NewApplicationService(repo, newMockStorage(), &mockNotifier{})

	url, err := svc.SignFileURL(context.Background(), "a1", "applications/a1/resume.pdf")

	require.NoError(t, err)
	assert.Contains(t, url, "applications/a1/resume.pdf")
}

func TestDeleteFile_RemovesFromStorageAndList(t *testing.T) {
	var updatedFiles models.FileList
	repo := &mockApplicationRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Application, error) {
			app := &models.Application{
				Files: models.FileList{
					{Name: "resume.pdf", Path: "applications/a1/resume.pdf"},
					{Name: "cover.pdf", Path: "applications/a1/cover.pdf"},
				},
			}
			app.ID = "a1"
			return app, nil
		},
		updateFilesFn: func(ctx context.Context, id string, files models.FileList) error {
			updatedFiles = files
			return nil
		},
	}
	store := newMockStorage()
	svc := NewApplicationService(repo, store, &mockNotifier{})

	err := svc.DeleteFile(context.Background(), "a1", "applications/a1/resume.pdf")

	require.NoError(t, err)
	assert.Equal(t, []string{"applications/a1/resume.pdf"}, store.deleted)
	require.Len(t, updatedFiles, 1)
	assert.Equal(t, "cover.pdf", updatedFiles[0].Name)
}

func TestDeleteFile_UnknownPath(t *testing.T) {
	repo := &mockApplicationRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Application, error) {
			return &models.Application{}, nil
		},
	}
	svc := NewApplicationService(repo, newMockStorage(), &mockNotifier{})

	err := svc.DeleteFile(context.Background(), "a1", "applications/a1/missing.pdf")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestDelete_RemovesFilesThenRow(t *testing.T) {
	rowDeleted := false
	repo := &mockApplicationRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Application, error) {
			app := &models.Application{
				Files: models.FileList{
					{Name: "resume.pdf", Path: "applications/a1/resume.pdf"},
					{Name: "cover.pdf", Path: "applications/a1/cover.pdf"},
				},
			}
			app.ID = "a1"
			return app, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			rowDeleted = true
			return nil
		},
	}
	store := newMockStorage()
	svc := NewApplicationService(repo, store, &mockNotifier{})

	err := svc.Delete(context.Background(), "a1")

	require.NoError(t, err)
	assert.True(t, rowDeleted)
	assert.Len(t, store.deleted, 2)
}

func TestDelete_StorageFailureStillDeletesRow(t *testing.T) {
	rowDeleted := false
	repo := &mockApplicationRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Application, error) {
			app := &models.Application{
				Files: models.FileList{{Name: "resume.pdf", Path: "applications/a1/resume.pdf"}},
			}
			app.ID = "a1"
			return app, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			rowDeleted = true
			return nil
		},
	}
	store := newMockStorage()
	store.deleteErr = errors.New("bucket unavailable")
	svc := NewApplicationService(repo, store, &mockNotifier{})

	err := svc.Delete(context.Background(), "a1")

	// Storage failure is logged, not propagated; the row still goes.
	require.NoError(t, err)
	assert.True(t, rowDeleted)
}

func TestDelete_MissingApplication(t *testing.T) {
	repo := &mockApplicationRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Application, error) {
			return nil, repositories.ErrNotFound
		},
	}
	svc := NewApplicationService(repo, newMockStorage(), &mockNotifier{})

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
