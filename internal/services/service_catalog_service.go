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

// ServiceCatalogService manages the public service catalog. Writes are
// admin only; the public site just reads the list.
type ServiceCatalogService interface {
	List(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, req dto.ServiceRequest) (*models.Service, error)
	Update(ctx context.Context, req dto.ServiceRequest) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceCatalogServiceImpl struct {
	serviceRepo repositories.ServiceRepository
}

func NewServiceCatalogService(serviceRepo repositories.ServiceRepository) ServiceCatalogService {
	return &ServiceCatalogServiceImpl{serviceRepo: serviceRepo}
}

func (s *ServiceCatalogServiceImpl) List(ctx context.Context) ([]models.Service, error) {
	services, err := s.serviceRepo.List(ctx, "sort_order", false)
	if err != nil {
		return nil, apperrors.PersistenceError(err, "service", "Failed to load services")
	}
	return services, nil
}

func (s *ServiceCatalogServiceImpl) Create(ctx context.Context, req dto.ServiceRequest) (*models.Service, error) {
	service := serviceFromRequest(req)

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, apperrors.PersistenceError(err, "service", "Failed to create service")
	}

	logger.CtxInfo(ctx, "service created", "service_id", service.ID, "title", service.Title)
	return service, nil
}

func (s *ServiceCatalogServiceImpl) Update(ctx context.Context, req dto.ServiceRequest) (*models.Service, error) {
	service := serviceFromRequest(req)
	service.ID = req.ID

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("service", "Service not found")
		}
		return nil, apperrors.PersistenceError(err, "service", "Failed to update service")
	}

	return service, nil
}

func (s *ServiceCatalogServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFoundError("service", "Service not found")
		}
		return apperrors.PersistenceError(err, "service", "Failed to delete service")
	}
	logger.CtxInfo(ctx, "service deleted", "service_id", id)
	return nil
}

func serviceFromRequest(req dto.ServiceRequest) *models.Service {
	return &models.Service{
		Title:        req.Title,
		Subtitle:     optional(req.Subtitle),
		Description:  req.Description,
		Features:     pq.StringArray(req.Features),
		Applications: optional(req.Applications),
		Icon:         optional(req.Icon),
		Gradient:     optional(req.Gradient),
		IsActive:     req.IsActive,
		SortOrder:    req.SortOrder,
	}
}
