package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"castpro_backend/internal/email"
	"castpro_backend/internal/logger"
	"castpro_backend/internal/models"
	"castpro_backend/internal/repositories"
	"castpro_backend/internal/services/dto"
	"castpro_backend/internal/storage"
	"castpro_backend/pkg/apperrors"
)

// signedURLTTL bounds how long an application file link stays usable.
const signedURLTTL = time.Hour

type ApplicationService interface {
	// Apply validates each attachment independently: conforming files are
	// stored and recorded, failing files come back in the rejected list.
	Apply(ctx context.Context, req dto.ApplicationRequest, files []dto.UploadFile) (*models.Application, []dto.RejectedFile, error)
	List(ctx context.Context) ([]models.Application, error)
	// SignFileURL returns a temporary download link for a file that
	// belongs to the application.
	SignFileURL(ctx context.Context, id, path string) (string, error)
	DeleteFile(ctx context.Context, id, path string) error
	Delete(ctx context.Context, id string) error
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	store    storage.Storage
	policy   UploadPolicy
	notifier email.Notifier
}

func NewApplicationService(appRepo repositories.ApplicationRepository, store storage.Storage, notifier email.Notifier) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		store:    store,
		policy:   CareerUploadPolicy{},
		notifier: notifier,
	}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, req dto.ApplicationRequest, files []dto.UploadFile) (*models.Application, []dto.RejectedFile, error) {
	// The ID is assigned up front so uploads can be namespaced under it
	// before the row exists.
	appID := uuid.NewString()

	var accepted models.FileList
	var rejected []dto.RejectedFile

	for _, file := range files {
		if err := s.policy.Check(file.Name, file.Size); err != nil {
			rejected = append(rejected, dto.RejectedFile{Name: file.Name, Reason: err.Error()})
			continue
		}

		reader, err := file.Open()
		if err != nil {
			return nil, rejected, apperrors.UploadError(err, "Failed to read uploaded file")
		}

		path := fmt.Sprintf("applications/%s/%s", appID, file.Name)
		err = s.store.Save(ctx, path, reader, file.ContentType)
		reader.Close()
		if err != nil {
			return nil, rejected, apperrors.UploadError(err, "Failed to store uploaded file")
		}

		accepted = append(accepted, models.FileDescriptor{
			Name: file.Name,
			Size: file.Size,
			Type: file.ContentType,
			Path: path,
		})
	}

	application := &models.Application{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   optional(req.Phone),
		Message: optional(req.Message),
		Files:   accepted,
	}
	application.ID = appID

	if err := s.appRepo.Create(ctx, application); err != nil {
		return nil, rejected, apperrors.PersistenceError(err, "application", "Failed to save application")
	}

	logger.CtxInfo(ctx, "career application received",
		"application_id", application.ID, "email", application.Email,
		"files", len(accepted), "rejected", len(rejected))

	subject := fmt.Sprintf("New career application from %s", application.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nFiles: %d", application.Name, application.Email, len(accepted))
	if err := s.notifier.Notify(subject, body); err != nil {
		logger.CtxWithError(ctx, "application notification mail failed", err, "application_id", application.ID)
	}

	return application, rejected, nil
}

func (s *ApplicationServiceImpl) List(ctx context.Context) ([]models.Application, error) {
	applications, err := s.appRepo.List(ctx, "created_at", true)
	if err != nil {
		return nil, apperrors.PersistenceError(err, "application", "Failed to load applications")
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) SignFileURL(ctx context.Context, id, path string) (string, error) {
	application, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return "", apperrors.NewNotFoundError("application", "Application not found")
		}
		return "", apperrors.PersistenceError(err, "application", "Failed to load application")
	}

	// Only paths recorded on the row may be signed; anything else could
	// leak another applicant's files.
	if _, ok := models.FindFileByPath(application.Files, path); !ok {
		return "", apperrors.NewNotFoundError("application", "File not found on application")
	}

	url, err := s.store.GetSignedURL(ctx, path, signedURLTTL)
	if err != nil {
		return "", apperrors.UploadError(err, "Failed to sign file URL")
	}
	return url, nil
}

func (s *ApplicationServiceImpl) DeleteFile(ctx context.Context, id, path string) error {
	application, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("application", "Application not found")
		}
		return apperrors.PersistenceError(err, "application", "Failed to load application")
	}

	files, removed := models.RemoveFileByPath(application.Files, path)
	if !removed {
		return apperrors.NewNotFoundError("application", "File not found on application")
	}

	if err := s.store.Delete(ctx, path); err != nil {
		return apperrors.UploadError(err, "Failed to delete stored file")
	}

	if err := s.appRepo.UpdateFiles(ctx, id, files); err != nil {
		return apperrors.PersistenceError(err, "application", "Failed to update application files")
	}

	logger.CtxInfo(ctx, "application file deleted", "application_id", id, "path", path)
	return nil
}

// Delete removes every stored file, then the row. A failed storage
// removal is logged and the row removal still proceeds; there is no
// rollback, so a storage outage can orphan files.
func (s *ApplicationServiceImpl) Delete(ctx context.Context, id string) error {
	application, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("application", "Application not found")
		}
		return apperrors.PersistenceError(err, "application", "Failed to load application")
	}

	for _, file := range application.Files {
		if err := s.store.Delete(ctx, file.Path); err != nil {
			logger.CtxWithError(ctx, "failed to delete application file", err,
				"application_id", id, "path", file.Path)
		}
	}

	if err := s.appRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("application", "Application not found")
		}
		return apperrors.PersistenceError(err, "application", "Failed to delete application")
	}

	logger.CtxInfo(ctx, "application deleted", "application_id", id, "files", len(application.Files))
	return nil
}
