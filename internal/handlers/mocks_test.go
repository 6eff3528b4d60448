package handlers

import (
	"context"

	"castpro_backend/internal/models"
	"castpro_backend/internal/services/dto"
)

// Service mocks for handler tests. Function fields left nil mean the
// method succeeds with zero values.

type mockAuthService struct {
	loginFn func(ctx context.Context, req dto.LoginRequest) (string, error)
}

func (m *mockAuthService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return "", nil
}

type mockCareerService struct {
	deleteListingFn func(ctx context.Context, id string) error
	listActiveFn    func(ctx context.Context) ([]models.CareerListing, error)
}

func (m *mockCareerService) ListListings(ctx context.Context) ([]models.CareerListing, error) {
	return nil, nil
}

func (m *mockCareerService) ListActiveListings(ctx context.Context) ([]models.CareerListing, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockCareerService) CreateListing(ctx context.Context, req dto.CareerListingRequest) (*models.CareerListing, error) {
	return &models.CareerListing{}, nil
}

func (m *mockCareerService) UpdateListing(ctx context.Context, req dto.CareerListingRequest) (*models.CareerListing, error) {
	return &models.CareerListing{}, nil
}

func (m *mockCareerService) DeleteListing(ctx context.Context, id string) error {
	if m.deleteListingFn != nil {
		return m.deleteListingFn(ctx, id)
	}
	return nil
}

type mockApplicationService struct {
	applyFn func(ctx context.Context, req dto.ApplicationRequest, files []dto.UploadFile) (*models.Application, []dto.RejectedFile, error)
}

func (m *mockApplicationService) Apply(ctx context.Context, req dto.ApplicationRequest, files []dto.UploadFile) (*models.Application, []dto.RejectedFile, error) {
	if m.applyFn != nil {
		return m.applyFn(ctx, req, files)
	}
	return &models.Application{}, nil, nil
}

func (m *mockApplicationService) List(ctx context.Context) ([]models.Application, error) {
	return nil, nil
}

func (m *mockApplicationService) SignFileURL(ctx context.Context, id, path string) (string, error) {
	return "", nil
}

func (m *mockApplicationService) DeleteFile(ctx context.Context, id, path string) error {
	return nil
}

func (m *mockApplicationService) Delete(ctx context.Context, id string) error {
	return nil
}
