package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucVisit "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// Deps are the singletons the API is built from. Limiter may be nil to
// disable rate limiting.
type Deps struct {
	Visits   domain.Repository
	Patients domain.PatientDirectory
	Doctors  domain.DoctorDirectory

	Clock    timezone.Clock
	Location *time.Location
	Log      *zap.Logger
	Limiter  middleware.Limiter
	Checks   map[string]handlers.Check
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	if err := validators.Register(); err != nil {
		return err
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.CORSMiddleware(),
	)

	// ======================================================
	// USE CASES
	// ======================================================
	uc := handlers.VisitUseCases{
		Create:          ucVisit.NewCreateVisit(d.Visits, d.Clock, d.Location, d.Log),
		Get:             ucVisit.NewGetVisit(d.Visits),
		Cancel:          ucVisit.NewCancelVisit(d.Visits, d.Log),
		RegisterPatient: ucVisit.NewRegisterPatient(d.Visits, d.Patients, d.Log),
		RegisterDoctor:  ucVisit.NewRegisterDoctor(d.Visits, d.Doctors, d.Log),

		ForPatient:         ucVisit.NewListVisitsForPatient(d.Visits, d.Patients),
		ForDoctor:          ucVisit.NewListVisitsForDoctor(d.Visits, d.Doctors),
		AvailableForDoctor: ucVisit.NewListAvailableForDoctor(d.Visits, d.Doctors),
		BySpecAndDate:      ucVisit.NewListAvailableBySpecializationAndDate(d.Visits, d.Doctors, d.Location),
		BySpecAndRange:     ucVisit.NewListBySpecializationAndDateRange(d.Visits, d.Doctors, d.Location),
		ByRange:            ucVisit.NewListAvailableByDateRange(d.Visits, d.Location),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	visitHandler := handlers.NewVisitHandler(uc, d.Location)
	healthHandler := handlers.NewHealthHandler(d.Checks)

	r.GET("/health", healthHandler.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	if d.Limiter != nil {
		api.Use(middleware.RateLimit(d.Limiter, d.Log))
	}
	{
		api.POST("/visits", visitHandler.Create)
		api.GET("/visits/available", visitHandler.ListAvailable)
		api.GET("/visits/:id", visitHandler.Get)
		api.DELETE("/visits/:id", visitHandler.Cancel)
		api.POST("/visits/:id/patients/:patientId", visitHandler.RegisterPatient)
		api.POST("/visits/:id/doctors/:doctorId", visitHandler.RegisterDoctor)

		api.GET("/patients/:patientId/visits", visitHandler.ListForPatient)

		api.GET("/doctors/:doctorId/visits", visitHandler.ListForDoctor)
		api.GET("/doctors/:doctorId/visits/available", visitHandler.ListAvailableForDoctor)
	}

	return nil
}
