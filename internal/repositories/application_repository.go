package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"castpro_backend/internal/models"
)

type ApplicationRepository interface {
	List(ctx context.Context, orderBy string, desc bool) ([]models.Application, error)
	FindByID(ctx context.Context, id string) (*models.Application, error)
	Create(ctx context.Context, application *models.Application) error
	UpdateFiles(ctx context.Context, id string, files models.FileList) error
	Delete(ctx context.Context, id string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

var applicationOrderColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
}

func (r *ApplicationRepositoryImpl) List(ctx context.Context, orderBy string, desc bool) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Order(orderClause(applicationOrderColumns, orderBy, desc)).
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// UpdateFiles rewrites the whole descriptor list. Removal is done by the
// service matching on storage path before calling this.
func (r *ApplicationRepositoryImpl) UpdateFiles(ctx context.Context, id string, files models.FileList) error {
	res := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"files":      files,
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

func (r *ApplicationRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
