package repositories

import (
	"context"

	"gorm.io/gorm"

	"castpro_backend/internal/models"
)

type CareerListingRepository interface {
	List(ctx context.Context, orderBy string, desc bool) ([]models.CareerListing, error)
	ListActive(ctx context.Context) ([]models.CareerListing, error)
	Create(ctx context.Context, listing *models.CareerListing) error
	Update(ctx context.Context, listing *models.CareerListing) error
	Delete(ctx context.Context, id string) error
}

type CareerListingRepositoryImpl struct {
	db *gorm.DB
}

func NewCareerListingRepository(db *gorm.DB) CareerListingRepository {
	return &CareerListingRepositoryImpl{db: db}
}

var listingOrderColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
}

func (r *CareerListingRepositoryImpl) List(ctx context.Context, orderBy string, desc bool) ([]models.CareerListing, error) {
	var listings []models.CareerListing
	err := r.db.WithContext(ctx).
		Order(orderClause(listingOrderColumns, orderBy, desc)).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// ListActive returns only publicly visible listings, newest first.
func (r *CareerListingRepositoryImpl) ListActive(ctx context.Context) ([]models.CareerListing, error) {
	var listings []models.CareerListing
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *CareerListingRepositoryImpl) Create(ctx context.Context, listing *models.CareerListing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *CareerListingRepositoryImpl) Update(ctx context.Context, listing *models.CareerListing) error {
	res := r.db.WithContext(ctx).Model(&models.CareerListing{}).
		Where("id = ?", listing.ID).
		Select("title", "type", "location", "description", "requirements",
			"is_active", "updated_at").
		Updates(listing)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CareerListingRepositoryImpl) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CareerListing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
