package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"castpro_backend/internal/models"
)

type ContactRepository interface {
	List(ctx context.Context, orderBy string, desc bool) ([]models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error
	Delete(ctx context.Context, id string) error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

var contactOrderColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"status":     true,
}

func (r *ContactRepositoryImpl) List(ctx context.Context, orderBy string, desc bool) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.WithContext(ctx).
		Order(orderClause(contactOrderColumns, orderBy, desc)).
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepositoryImpl) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *ContactRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	res := r.db.WithContext(ctx).Model(&models.Contact{}).
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

func (r *ContactRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Contact{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
