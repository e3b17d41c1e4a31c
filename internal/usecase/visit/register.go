package visit

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// REGISTER PATIENT
// ======================================================

type RegisterPatient struct {
	repo     domain.Repository
	patients domain.PatientDirectory
	log      *zap.Logger
}

func NewRegisterPatient(
	repo domain.Repository,
	patients domain.PatientDirectory,
	log *zap.Logger,
) *RegisterPatient {
	return &RegisterPatient{
		repo:     repo,
		patients: patients,
		log:      log,
	}
}

func (uc *RegisterPatient) Execute(
	ctx context.Context,
	visitID uint,
	patientID uint,
) (*models.Visit, error) {

	exists := func(ctx context.Context) error {
		_, err := uc.patients.GetPatient(ctx, patientID)
		return err
	}

	return register(ctx, uc.repo, uc.log, domain.RolePatient, visitID, patientID, exists, uc.repo.AssignPatient)
}

// ======================================================
// REGISTER DOCTOR
// ======================================================

type RegisterDoctor struct {
	repo    domain.Repository
	doctors domain.DoctorDirectory
	log     *zap.Logger
}

func NewRegisterDoctor(
	repo domain.Repository,
	doctors domain.DoctorDirectory,
	log *zap.Logger,
) *RegisterDoctor {
	return &RegisterDoctor{
		repo:    repo,
		doctors: doctors,
		log:     log,
	}
}

func (uc *RegisterDoctor) Execute(
	ctx context.Context,
	visitID uint,
	doctorID uint,
) (*models.Visit, error) {

	exists := func(ctx context.Context) error {
		_, err := uc.doctors.GetDoctor(ctx, doctorID)
		return err
	}

	return register(ctx, uc.repo, uc.log, domain.RoleDoctor, visitID, doctorID, exists, uc.repo.AssignDoctor)
}

// ======================================================
// SHARED FLOW
// ======================================================

type assignFunc func(ctx context.Context, visitID, refID uint) (bool, error)

func register(
	ctx context.Context,
	repo domain.Repository,
	log *zap.Logger,
	role domain.Role,
	visitID uint,
	refID uint,
	assigneeExists func(context.Context) error,
	assign assignFunc,
) (*models.Visit, error) {

	// --------------------------------------------------
	// 1. Visit
	// --------------------------------------------------
	v, err := loadVisit(ctx, repo, visitID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. No reassignment
	// --------------------------------------------------
	if domain.IsOccupied(v, role) {
		return nil, domain.ErrOccupied(role)
	}

	// --------------------------------------------------
	// 3. Patient / doctor must exist
	// --------------------------------------------------
	if err := assigneeExists(ctx); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrAssigneeMissing(role)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Conditional update
	// --------------------------------------------------
	ok, err := assign(ctx, visitID, refID)
	if err != nil {
		return nil, err
	}

	if !ok {
		// Lost a race: the visit was either assigned or cancelled meanwhile.
		if _, err := loadVisit(ctx, repo, visitID); err != nil {
			return nil, err
		}
		log.Warn("visit assigned by concurrent request",
			zap.Uint("visit_id", visitID),
			zap.String("role", string(role)),
		)
		return nil, domain.ErrOccupied(role)
	}

	updated, err := loadVisit(ctx, repo, visitID)
	if err != nil {
		return nil, err
	}

	log.Info("visit registered",
		zap.Uint("visit_id", visitID),
		zap.String("role", string(role)),
		zap.Uint("ref_id", refID),
	)

	return updated, nil
}

func loadVisit(ctx context.Context, repo domain.Repository, id uint) (*models.Visit, error) {
	v, err := repo.GetVisit(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrVisitNotFound()
		}
		return nil, err
	}
	return v, nil
}
