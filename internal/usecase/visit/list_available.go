package visit

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// BY SPECIALIZATION + SINGLE DAY
// ======================================================

type ListAvailableBySpecializationAndDate struct {
	bySpec *ListBySpecializationAndDateRange
}

func NewListAvailableBySpecializationAndDate(
	repo domain.Repository,
	doctors domain.DoctorDirectory,
	loc *time.Location,
) *ListAvailableBySpecializationAndDate {
	return &ListAvailableBySpecializationAndDate{
		bySpec: NewListBySpecializationAndDateRange(repo, doctors, loc),
	}
}

func (uc *ListAvailableBySpecializationAndDate) Execute(
	ctx context.Context,
	specialization string,
	date time.Time,
) ([]models.Visit, error) {
	return uc.bySpec.Execute(ctx, specialization, date, date)
}

// ======================================================
// BY SPECIALIZATION + DATE RANGE
// ======================================================

type ListBySpecializationAndDateRange struct {
	repo    domain.Repository
	doctors domain.DoctorDirectory
	loc     *time.Location
}

func NewListBySpecializationAndDateRange(
	repo domain.Repository,
	doctors domain.DoctorDirectory,
	loc *time.Location,
) *ListBySpecializationAndDateRange {
	return &ListBySpecializationAndDateRange{
		repo:    repo,
		doctors: doctors,
		loc:     loc,
	}
}

// Execute returns free visits of doctors with the given specialization that
// start within [start 00:00, end 23:59:59.999999999]. An unknown
// specialization is an error, not an empty result.
func (uc *ListBySpecializationAndDateRange) Execute(
	ctx context.Context,
	specialization string,
	start time.Time,
	end time.Time,
) ([]models.Visit, error) {

	doctors, err := uc.doctors.ListDoctorsBySpecialization(ctx, specialization)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, domain.ErrNoDoctorsFound()
	}

	r, err := domain.DayRange(start, end, uc.loc)
	if err != nil {
		return nil, err
	}

	visits, err := uc.repo.ListByDoctorSpecializationAndStartTimeBetween(ctx, specialization, r.From, r.To)
	if err != nil {
		return nil, err
	}

	return domain.FilterAvailable(visits), nil
}

// ======================================================
// BY DATE RANGE (ANY DOCTOR)
// ======================================================

type ListAvailableByDateRange struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAvailableByDateRange(
	repo domain.Repository,
	loc *time.Location,
) *ListAvailableByDateRange {
	return &ListAvailableByDateRange{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAvailableByDateRange) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Visit, error) {

	r, err := domain.DayRange(start, end, uc.loc)
	if err != nil {
		return nil, err
	}

	visits, err := uc.repo.ListByStartTimeBetween(ctx, r.From, r.To)
	if err != nil {
		return nil, err
	}

	return domain.FilterAvailable(visits), nil
}
