package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"castpro_backend/internal/models"
	"castpro_backend/internal/repositories"
	"castpro_backend/internal/services/dto"
)

// Hand-written repository mocks. Each method delegates to an optional
// function field; unset methods return zero values.

type mockProjectRepo struct {
	listFn         func(ctx context.Context, orderBy string, desc bool) ([]models.Project, error)
	createFn       func(ctx context.Context, project *models.Project) error
	updateStatusFn func(ctx context.Context, id string, status models.ProjectStatus) error
	deleteFn       func(ctx context.Context, id string) error
}

func (m *mockProjectRepo) List(ctx context.Context, orderBy string, desc bool) ([]models.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx, orderBy, desc)
	}
	return nil, nil
}

func (m *mockProjectRepo) Create(ctx context.Context, project *models.Project) error {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return nil
}

func (m *mockProjectRepo) UpdateStatus(ctx context.Context, id string, status models.ProjectStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockContactRepo struct {
	listFn         func(ctx context.Context, orderBy string, desc bool) ([]models.Contact, error)
	createFn       func(ctx context.Context, contact *models.Contact) error
	updateStatusFn func(ctx context.Context, id string, status models.ContactStatus) error
	deleteFn       func(ctx context.Context, id string) error
}

func (m *mockContactRepo) List(ctx context.Context, orderBy string, desc bool) ([]models.Contact, error) {
	if m.listFn != nil {
		return m.listFn(ctx, orderBy, desc)
	}
	return nil, nil
}

func (m *mockContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	if m.createFn != nil {
		return m.createFn(ctx, contact)
	}
	return nil
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockServiceRepo struct {
	listFn func(ctx context.Context, orderBy string, desc bool) ([]models.Service, error)
}

func (m *mockServiceRepo) List(ctx context.Context, orderBy string, desc bool) ([]models.Service, error) {
	if m.listFn != nil {
		return m.listFn(ctx, orderBy, desc)
	}
	return nil, nil
}

func (m *mockServiceRepo) Create(ctx context.Context, service *models.Service) error { return nil }
func (m *mockServiceRepo) Update(ctx context.Context, service *models.Service) error { return nil }
func (m *mockServiceRepo) Delete(ctx context.Context, id string) error               { return nil }

type mockListingRepo struct {
	listFn       func(ctx context.Context, orderBy string, desc bool) ([]models.CareerListing, error)
	listActiveFn func(ctx context.Context) ([]models.CareerListing, error)
}

func (m *mockListingRepo) List(ctx context.Context, orderBy string, desc bool) ([]models.CareerListing, error) {
	if m.listFn != nil {
		return m.listFn(ctx, orderBy, desc)
	}
	return nil, nil
}

func (m *mockListingRepo) ListActive(ctx context.Context) ([]models.CareerListing, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockListingRepo) Create(ctx context.Context, listing *models.CareerListing) error {
	return nil
}

func (m *mockListingRepo) Update(ctx context.Context, listing *models.CareerListing) error {
	return nil
}

func (m *mockListingRepo) Delete(ctx context.Context, id string) error { return nil }

type mockApplicationRepo struct {
	listFn        func(ctx context.Context, orderBy string, desc bool) ([]models.Application, error)
	findByIDFn    func(ctx context.Context, id string) (*models.Application, error)
	createFn      func(ctx context.Context, application *models.Application) error
	updateFilesFn func(ctx context.Context, id string, files models.FileList) error
	deleteFn      func(ctx context.Context, id string) error
}

func (m *mockApplicationRepo) List(ctx context.Context, orderBy string, desc bool) ([]models.Application, error) {
	if m.listFn != nil {
		return m.listFn(ctx, orderBy, desc)
	}
	return nil, nil
}

func (m *mockApplicationRepo) FindByID(ctx context.Context, id string) (*models.Application, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	if m.createFn != nil {
		return m.createFn(ctx, application)
	}
	return nil
}

func (m *mockApplicationRepo) UpdateFiles(ctx context.Context, id string, files models.FileList) error {
	if m.updateFilesFn != nil {
		return m.updateFilesFn(ctx, id, files)
	}
	return nil
}

func (m *mockApplicationRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockAdminRepo struct {
	findFn func(ctx context.Context, login string) (*models.AdminUser, error)
}

func (m *mockAdminRepo) FindByUsernameOrEmail(ctx context.Context, login string) (*models.AdminUser, error) {
	if m.findFn != nil {
		return m.findFn(ctx, login)
	}
	return nil, repositories.ErrNotFound
}

func (m *mockAdminRepo) Create(ctx context.Context, user *models.AdminUser) error { return nil }

// mockStorage records saves and deletes in memory.
type mockStorage struct {
	mu        sync.Mutex
	saved     map[string][]byte
	deleted   []string
	saveErr   error
	deleteErr error
	signedURL string
	signErr   error
}

func newMockStorage() *mockStorage {
	return &mockStorage{saved: make(map[string][]byte)}
}

func (m *mockStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	data, _ := io.ReadAll(reader)
	m.mu.Lock()
	m.saved[path] = data
	m.mu.Unlock()
	return nil
}

func (m *mockStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.saved[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (m *mockStorage) Delete(ctx context.Context, path string) error {
	m.mu.Lock()
	m.deleted = append(m.deleted, path)
	m.mu.Unlock()
	return m.deleteErr
}

func (m *mockStorage) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.saved[path]
	return ok, nil
}

func (m *mockStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "https://files.example.com/" + path, nil
}

func (m *mockStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	if m.signErr != nil {
		return "", m.signErr
	}
	if m.signedURL != "" {
		return m.signedURL, nil
	}
	return "https://files.example.com/signed/" + path, nil
}

// mockNotifier records sent notifications.
type mockNotifier struct {
	mu       sync.Mutex
	subjects []string
	err      error
}

func (m *mockNotifier) Notify(subject, body string) error {
	m.mu.Lock()
	m.subjects = append(m.subjects, subject)
	m.mu.Unlock()
	return m.err
}

// uploadFileFromString builds a dto.UploadFile backed by a string body.
func uploadFileFromString(name, contentType, body string) dto.UploadFile {
	return dto.UploadFile{
		Name:        name,
		Size:        int64(len(body)),
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(body)), nil
		},
	}
}
