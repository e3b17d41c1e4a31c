package visit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// StartTimeTaken reports whether any visit already starts at t.
func StartTimeTaken(ctx context.Context, repo Repository, t time.Time) (bool, error) {
	return repo.ExistsByStartTime(ctx, t)
}

// IsOccupied reports whether the given role is already assigned on v.
func IsOccupied(v *models.Visit, role Role) bool {
	switch role {
	case RolePatient:
		return v.PatientID != nil
	case RoleDoctor:
		return v.DoctorID != nil
	default:
		return false
	}
}

// IsAvailable reports whether a visit can still be booked by a patient.
func IsAvailable(v *models.Visit) bool {
	return !IsOccupied(v, RolePatient)
}
