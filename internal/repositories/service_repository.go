package repositories

import (
	"context"

	"gorm.io/gorm"

	"castpro_backend/internal/models"
)

type ServiceRepository interface {
	List(ctx context.Context, orderBy string, desc bool) ([]models.Service, error)
	Create(ctx context.Context, service *models.Service) error
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, id string) error
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

var serviceOrderColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"sort_order": true,
}

func (r *ServiceRepositoryImpl) List(ctx context.Context, orderBy string, desc bool) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Order(orderClause(serviceOrderColumns, orderBy, desc)).
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *models.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *models.Service) error {
	res := r.db.WithContext(ctx).Model(&models.Service{}).
		Where("id = ?", service.ID).
		Select("title", "subtitle", "description", "features", "applications",
			"icon", "gradient", "is_active", "sort_order", "updated_at").
		Updates(service)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
