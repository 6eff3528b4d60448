package services

import (
	"context"

	"github.com/lib/pq"

	"castpro_backend/internal/logger"
	"castpro_backend/internal/models"
	"castpro_backend/internal/repositories"
	"castpro_backend/internal/services/dto"
	"castpro_backend/pkg/apperrors"
)

type CareerService interface {
	ListListings(ctx context.Context) ([]models.CareerListing, error)
	// ListActiveListings is the public view: active listings only.
	ListActiveListings(ctx context.Context) ([]models.CareerListing, error)
	CreateListing(ctx context.Context, req dto.CareerListingRequest) (*models.CareerListing, error)
	UpdateListing(ctx context.Context, req dto.CareerListingRequest) (*models.CareerListing, error)
	DeleteListing(ctx context.Context, id string) error
}

type CareerServiceImpl struct {
	listingRepo repositories.CareerListingRepository
}

func NewCareerService(listingRepo repositories.CareerListingRepository) CareerService {
	return &CareerServiceImpl{listingRepo: listingRepo}
}

func (s *CareerServiceImpl) ListListings(ctx context.Context) ([]models.CareerListing, error) {
	listings, err := s.listingRepo.List(ctx, "created_at", true)
	if err != nil {
		return nil, apperrors.PersistenceError(err, "career", "Failed to load career listings")
	}
	return listings, nil
}

func (s *CareerServiceImpl) ListActiveListings(ctx context.Context) ([]models.CareerListing, error) {
	listings, err := s.listingRepo.ListActive(ctx)
	if err != nil {
		return nil, apperrors.PersistenceError(err, "career", "Failed to load career listings")
	}
	return listings, nil
}

func (s *CareerServiceImpl) CreateListing(ctx context.Context, req dto.CareerListingRequest) (*models.CareerListing, error) {
	listing := &models.CareerListing{
		Title:        req.Title,
		Type:         models.ListingType(req.Type),
		Location:     req.Location,
		Description:  req.Description,
		Requirements: pq.StringArray(req.Requirements),
		IsActive:     req.IsActive,
	}
	if !listing.Type.Valid() {
		return nil, apperrors.NewBadRequestError("Invalid listing type")
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		return nil, apperrors.PersistenceError(err, "career", "Failed to create career listing")
	}

	logger.CtxInfo(ctx, "career listing created", "listing_id", listing.ID, "title", listing.Title)
	return listing, nil
}

func (s *CareerServiceImpl) UpdateListing(ctx context.Context, req dto.CareerListingRequest) (*models.CareerListing, error) {
	listing := &models.CareerListing{
		Title:        req.Title,
		Type:         models.ListingType(req.Type),
		Location:     req.Location,
		Description:  req.Description,
		Requirements: pq.StringArray(req.Requirements),
		IsActive:     req.IsActive,
	}
	listing.ID = req.ID
	if !listing.Type.Valid() {
		return nil, apperrors.NewBadRequestError("Invalid listing type")
	}

	if err := s.listingRepo.Update(ctx, listing); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("career", "Career listing not found")
		}
		return nil, apperrors.PersistenceError(err, "career", "Failed to update career listing")
	}

	return listing, nil
}

func (s *CareerServiceImpl) DeleteListing(ctx context.Context, id string) error {
	if err := s.listingRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("career", "Career listing not found")
		}
		return apperrors.PersistenceError(err, "career", "Failed to delete career listing")
	}
	logger.CtxInfo(ctx, "career listing deleted", "listing_id", id)
	return nil
}
