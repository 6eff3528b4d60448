package services

import (
	"context"
	"fmt"
	"time"

	"castpro_backend/internal/email"
	"castpro_backend/internal/logger"
	"castpro_backend/internal/models"
	"castpro_backend/internal/repositories"
	"castpro_backend/internal/services/dto"
	"castpro_backend/internal/storage"
	"castpro_backend/pkg/apperrors"
)

type ProjectService interface {
	Submit(ctx context.Context, req dto.SubmitProjectRequest) (*models.Project, error)
	// UploadFile stores one attachment in the public project bucket and
	// returns its descriptor with a permanent URL. The client collects
	// descriptors and echoes them back on Submit.
	UploadFile(ctx context.Context, file dto.UploadFile) (*models.FileDescriptor, error)
	List(ctx context.Context, search, status string) ([]models.Project, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

type ProjectServiceImpl struct {
	projectRepo repositories.ProjectRepository
	store       storage.Storage
	policy      UploadPolicy
	notifier    email.Notifier
}

func NewProjectService(projectRepo repositories.ProjectRepository, store storage.Storage, notifier email.Notifier) ProjectService {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		store:       store,
		policy:      ProjectUploadPolicy{},
		notifier:    notifier,
	}
}

func (s *ProjectServiceImpl) Submit(ctx context.Context, req dto.SubmitProjectRequest) (*models.Project, error) {
	files := make(models.FileList, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, models.FileDescriptor{
			Name: f.Name,
			Size: f.Size,
			Type: f.Type,
			Path: f.Path,
			URL:  f.URL,
		})
	}

	project := &models.Project{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              optional(req.Phone),
		Company:            optional(req.Company),
		ProjectDescription: req.ProjectDescription,
		Files:              files,
		Status:             models.ProjectStatusNew,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, apperrors.PersistenceError(err, "project", "Failed to save project request")
	}

	logger.CtxInfo(ctx, "project request received",
		"project_id", project.ID, "email", project.Email, "files", len(files))

	subject := fmt.Sprintf("New project request from %s", project.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nFiles: %d\n\n%s",
		project.Name, project.Email, len(files), project.ProjectDescription)
	if err := s.notifier.Notify(subject, body); err != nil {
		logger.CtxWithError(ctx, "project notification mail failed", err, "project_id", project.ID)
	}

	return project, nil
}

func (s *ProjectServiceImpl) UploadFile(ctx context.Context, file dto.UploadFile) (*models.FileDescriptor, error) {
	if err := s.policy.Check(file.Name, file.Size); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	reader, err := file.Open()
	if err != nil {
		return nil, apperrors.UploadError(err, "Failed to read uploaded file")
	}
	defer reader.Close()

	// Millisecond timestamps keep same-named files from colliding.
	path := fmt.Sprintf("projects/%d-%s", time.Now().UnixMilli(), file.Name)
	if err := s.store.Save(ctx, path, reader, file.ContentType); err != nil {
		return nil, apperrors.UploadError(err, "Failed to store uploaded file")
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.UploadError(err, "Failed to resolve file URL")
	}

	logger.CtxInfo(ctx, "project file uploaded", "path", path, "size", file.Size)

	return &models.FileDescriptor{
		Name: file.Name,
		Size: file.Size,
		Type: file.ContentType,
		Path: path,
		URL:  url,
	}, nil
}

func (s *ProjectServiceImpl) List(ctx context.Context, search, status string) ([]models.Project, error) {
	projects, err := s.projectRepo.List(ctx, "created_at", true)
	if err != nil {
		return nil, apperrors.PersistenceError(err, "project", "Failed to load projects")
	}
	return FilterProjects(projects, search, status), nil
}

func (s *ProjectServiceImpl) UpdateStatus(ctx context.Context, id string, status string) error {
	st := models.ProjectStatus(status)
	if !st.Valid() {
		return apperrors.NewBadRequestError(fmt.Sprintf("Invalid status: %s", status))
	}

	if err := s.projectRepo.UpdateStatus(ctx, id, st); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("project", "Project not found")
		}
		return apperrors.PersistenceError(err, "project", "Failed to update project")
	}
	return nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("project", "Project not found")
		}
		return apperrors.PersistenceError(err, "project", "Failed to delete project")
	}
	logger.CtxInfo(ctx, "project deleted", "project_id", id)
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
