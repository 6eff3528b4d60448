package services

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"castpro_backend/internal/logger"
	"castpro_backend/internal/models"
	"castpro_backend/internal/repositories"
	"castpro_backend/internal/services/dto"
)

// DashboardService assembles the admin overview from all five
// collections at once.
type DashboardService interface {
	Load(ctx context.Context) (*dto.DashboardData, error)
}

type DashboardServiceImpl struct {
	projectRepo repositories.ProjectRepository
	contactRepo repositories.ContactRepository
	serviceRepo repositories.ServiceRepository
	listingRepo repositories.CareerListingRepository
	appRepo     repositories.ApplicationRepository
}

func NewDashboardService(
	projectRepo repositories.ProjectRepository,
	contactRepo repositories.ContactRepository,
	serviceRepo repositories.ServiceRepository,
	listingRepo repositories.CareerListingRepository,
	appRepo repositories.ApplicationRepository,
) DashboardService {
	return &DashboardServiceImpl{
		projectRepo: projectRepo,
		contactRepo: contactRepo,
		serviceRepo: serviceRepo,
		listingRepo: listingRepo,
		appRepo:     appRepo,
	}
}

// Load fetches the five collections concurrently. Each fetch settles on
// its own: a failure empties that collection and is reported in
// FetchErrors, while the other four still populate. The goroutines
// never return an error, so one bad fetch cannot cancel the rest.
func (s *DashboardServiceImpl) Load(ctx context.Context) (*dto.DashboardData, error) {
	data := &dto.DashboardData{
		Projects:       []models.Project{},
		Contacts:       []models.Contact{},
		Services:       []models.Service{},
		CareerListings: []models.CareerListing{},
		Applications:   []models.Application{},
	}
	fetchErrors := make(map[string]string)

	// Each goroutine owns its slice field; only the error map is shared.
	var mu sync.Mutex
	recordError := func(key string, err error) {
		mu.Lock()
		fetchErrors[key] = err.Error()
		mu.Unlock()
	}

	var g errgroup.Group

	g.Go(func() error {
		projects, err := s.projectRepo.List(ctx, "created_at", true)
		if err != nil {
			logger.CtxWithError(ctx, "dashboard: projects fetch failed", err)
			recordError("projects", err)
			return nil
		}
		data.Projects = projects
		return nil
	})

	g.Go(func() error {
		contacts, err := s.contactRepo.List(ctx, "created_at", true)
		if err != nil {
			logger.CtxWithError(ctx, "dashboard: contacts fetch failed", err)
			recordError("contacts", err)
			return nil
		}
		data.Contacts = contacts
		return nil
	})

	g.Go(func() error {
		services, err := s.serviceRepo.List(ctx, "sort_order", false)
		if err != nil {
			logger.CtxWithError(ctx, "dashboard: services fetch failed", err)
			recordError("services", err)
			return nil
		}
		data.Services = services
		return nil
	})

	g.Go(func() error {
		listings, err := s.listingRepo.List(ctx, "created_at", true)
		if err != nil {
			logger.CtxWithError(ctx, "dashboard: career listings fetch failed", err)
			recordError("career_listings", err)
			return nil
		}
		data.CareerListings = listings
		return nil
	})

	g.Go(func() error {
		applications, err := s.appRepo.List(ctx, "created_at", true)
		if err != nil {
			logger.CtxWithError(ctx, "dashboard: applications fetch failed", err)
			recordError("applications", err)
			return nil
		}
		data.Applications = applications
		return nil
	})

	// Wait never fails here; the closures swallow their errors.
	_ = g.Wait()

	if len(fetchErrors) > 0 {
		data.FetchErrors = fetchErrors
	}
	data.Summary = summarize(data)
	return data, nil
}

func summarize(data *dto.DashboardData) dto.DashboardSummary {
	summary := dto.DashboardSummary{
		TotalProjects:     len(data.Projects),
		TotalContacts:     len(data.Contacts),
		TotalServices:     len(data.Services),
		TotalListings:     len(data.CareerListings),
		TotalApplications: len(data.Applications),
	}
	for _, p := range data.Projects {
		if p.Status == models.ProjectStatusNew {
			summary.NewProjects++
		}
	}
	for _, c := range data.Contacts {
		if c.Status == models.ContactStatusNew {
			summary.NewContacts++
		}
	}
	for _, l := range data.CareerListings {
		if l.IsActive {
			summary.ActiveListings++
		}
	}
	return summary
}
