package visit

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ListVisitsForPatient struct {
	repo     domain.Repository
	patients domain.PatientDirectory
}

func NewListVisitsForPatient(
	repo domain.Repository,
	patients domain.PatientDirectory,
) *ListVisitsForPatient {
	return &ListVisitsForPatient{
		repo:     repo,
		patients: patients,
	}
}

// Execute returns every visit booked by the patient, past and future.
func (uc *ListVisitsForPatient) Execute(
	ctx context.Context,
	patientID uint,
) ([]models.Visit, error) {

	exists, err := uc.patients.PatientExists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrPatientNotFound()
	}

	return uc.repo.ListByPatient(ctx, patientID)
}
