package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"castpro_backend/internal/models"
)

type ProjectRepository interface {
	List(ctx context.Context, orderBy string, desc bool) ([]models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	UpdateStatus(ctx context.Context, id string, status models.ProjectStatus) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

var projectOrderColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"status":     true,
}

func (r *ProjectRepositoryImpl) List(ctx context.Context, orderBy string, desc bool) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Order(orderClause(projectOrderColumns, orderBy, desc)).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.ProjectStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Project{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
