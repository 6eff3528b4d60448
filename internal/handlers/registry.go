package handlers

// AppHandlers groups every handler for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Contact     *ContactHandler
	Project     *ProjectHandler
	Career      *CareerHandler
	Application *ApplicationHandler
	Service     *ServiceHandler
	Dashboard   *DashboardHandler
}
