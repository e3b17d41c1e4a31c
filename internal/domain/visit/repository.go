package visit

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var (
	// ErrNotFound is returned by stores when a visit, patient or doctor
	// record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrStartTimeTaken is returned by CreateVisit when another visit
	// already starts at the same instant.
	ErrStartTimeTaken = errors.New("start time already taken")
)

// Repository is the Visit Store. Every list method returns visits ordered
// by start time ascending.
type Repository interface {
	CreateVisit(ctx context.Context, v *models.Visit) error
	GetVisit(ctx context.Context, id uint) (*models.Visit, error)
	DeleteVisit(ctx context.Context, id uint) error

	ExistsByStartTime(ctx context.Context, start time.Time) (bool, error)

	// AssignPatient sets the patient on a visit only if none is set yet.
	// It reports false when no row was updated.
	AssignPatient(ctx context.Context, visitID, patientID uint) (bool, error)
	AssignDoctor(ctx context.Context, visitID, doctorID uint) (bool, error)

	ListByPatient(ctx context.Context, patientID uint) ([]models.Visit, error)
	ListByDoctor(ctx context.Context, doctorID uint) ([]models.Visit, error)
	ListByStartTimeBetween(ctx context.Context, from, to time.Time) ([]models.Visit, error)
	ListByDoctorSpecializationAndStartTimeBetween(
		ctx context.Context,
		specialization string,
		from time.Time,
		to time.Time,
	) ([]models.Visit, error)
}

type PatientDirectory interface {
	GetPatient(ctx context.Context, id uint) (*models.Patient, error)
	PatientExists(ctx context.Context, id uint) (bool, error)
}

type DoctorDirectory interface {
	GetDoctor(ctx context.Context, id uint) (*models.Doctor, error)
	ListDoctorsBySpecialization(ctx context.Context, specialization string) ([]models.Doctor, error)
}
