package server

import (
	"go.uber.org/zap"

	"schoolportal/internal/handler"
	"schoolportal/internal/repository"
	"schoolportal/internal/service"
	"schoolportal/internal/store"
)

// Repositories bundles the Firestore-backed repositories
type Repositories struct {
	Schools       repository.ISchoolRepository
	Officials     repository.IOfficialRepository
	Students      repository.IStudentRepository
	Opportunities repository.IOpportunityRepository
}

// Services bundles the business-logic services
type Services struct {
	Locator *service.LocatorService
	School  *service.SchoolService
	Account *service.AccountService
	Profile *service.ProfileService
	Student *service.StudentService
	Report  *service.ReportService
}

// Handlers bundles the HTTP handlers
type Handlers struct {
	Health  *handler.HealthHandler
	School  *handler.SchoolHandler
	Auth    *handler.AuthHandler
	Profile *handler.ProfileHandler
	Student *handler.StudentHandler
	Report  *handler.ReportHandler
}

// InitRepositories creates all repositories
func InitRepositories(st *store.Store) *Repositories {
	return &Repositories{
		Schools:       repository.NewSchoolRepository(st.Firestore),
		Officials:     repository.NewOfficialRepository(st.Firestore),
		Students:      repository.NewStudentRepository(st.Firestore),
		Opportunities: repository.NewOpportunityRepository(st.Firestore),
	}
}

// InitServices creates all services
func InitServices(repos *Repositories, identity store.IdentityProvider, logger *zap.Logger) *Services {
	locator := service.NewLocatorService(repos.Schools, repos.Officials)
	return &Services{
		Locator: locator,
		School:  service.NewSchoolService(repos.Schools),
		Account: service.NewAccountService(repos.Schools, repos.Officials, locator, identity, logger),
		Profile: service.NewProfileService(repos.Schools, repos.Officials, locator, logger),
		Student: service.NewStudentService(repos.Students, locator),
		Report:  service.NewReportService(repos.Students, repos.Opportunities, logger),
	}
}

// InitHandlers creates all handlers
func InitHandlers(s *Services) *Handlers {
	return &Handlers{
		Health:  handler.NewHealthHandler(),
		School:  handler.NewSchoolHandler(s.School),
		Auth:    handler.NewAuthHandler(s.Account),
		Profile: handler.NewProfileHandler(s.Profile),
		Student: handler.NewStudentHandler(s.Student),
		Report:  handler.NewReportHandler(s.Locator, s.Report),
	}
}
