package visit

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// ALL VISITS OF A DOCTOR
// ======================================================

type ListVisitsForDoctor struct {
	repo    domain.Repository
	doctors domain.DoctorDirectory
}

func NewListVisitsForDoctor(
	repo domain.Repository,
	doctors domain.DoctorDirectory,
) *ListVisitsForDoctor {
	return &ListVisitsForDoctor{
		repo:    repo,
		doctors: doctors,
	}
}

func (uc *ListVisitsForDoctor) Execute(
	ctx context.Context,
	doctorID uint,
) ([]models.Visit, error) {

	if err := ensureDoctor(ctx, uc.doctors, doctorID); err != nil {
		return nil, err
	}

	return uc.repo.ListByDoctor(ctx, doctorID)
}

// ======================================================
// FREE VISITS OF A DOCTOR
// ======================================================

type ListAvailableForDoctor struct {
	repo    domain.Repository
	doctors domain.DoctorDirectory
}

func NewListAvailableForDoctor(
	repo domain.Repository,
	doctors domain.DoctorDirectory,
) *ListAvailableForDoctor {
	return &ListAvailableForDoctor{
		repo:    repo,
		doctors: doctors,
	}
}

func (uc *ListAvailableForDoctor) Execute(
	ctx context.Context,
	doctorID uint,
) ([]models.Visit, error) {

	if err := ensureDoctor(ctx, uc.doctors, doctorID); err != nil {
		return nil, err
	}

	visits, err := uc.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return domain.FilterAvailable(visits), nil
}

func ensureDoctor(ctx context.Context, doctors domain.DoctorDirectory, id uint) error {
	if _, err := doctors.GetDoctor(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrDoctorNotFound()
		}
		return err
	}
	return nil
}
