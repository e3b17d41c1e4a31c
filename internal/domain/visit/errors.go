package visit

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

// ===============================
// Error codes
// ===============================

const (
	CodeStartInPast                = "start_in_past"
	CodeInvalidMinutes             = "invalid_minutes"
	CodeInvalidRange               = "invalid_range"
	CodeInvalidDateRange           = "invalid_date_range"
	CodeStartTimeTaken             = "start_time_taken"
	CodeVisitNotFound              = "visit_not_found"
	CodeVisitOccupied              = "visit_occupied"
	CodeDoctorAssigned             = "visit_occupied_by_doctor"
	CodePatientNotFound            = "patient_not_found"
	CodeDoctorNotFound             = "doctor_not_found"
	CodeNoDoctorsForSpecialization = "no_doctors_found"
)

func errStartInPast() error {
	return httperr.ErrValidation(CodeStartInPast, "start date must be in the future")
}

func errInvalidMinutes() error {
	return httperr.ErrValidation(CodeInvalidMinutes, "minutes must be multiples of 15")
}

func errInvalidRange() error {
	return httperr.ErrValidation(CodeInvalidRange, "start time must be before end time")
}

func ErrInvalidDateRange() error {
	return httperr.ErrValidation(CodeInvalidDateRange, "start date must not be after end date")
}

func ErrStartTimeConflict() error {
	return httperr.ErrConflict(CodeStartTimeTaken, "visit with given date is already exist")
}

func ErrVisitNotFound() error {
	return httperr.ErrNotFound(CodeVisitNotFound, "visit does not exist")
}

func ErrOccupied(role Role) error {
	if role == RoleDoctor {
		return httperr.ErrConflict(CodeDoctorAssigned, "visit is already occupied by another doctor")
	}
	return httperr.ErrConflict(CodeVisitOccupied, "visit is already occupied")
}

// ErrAssigneeMissing is returned when the patient or doctor being
// registered into a visit does not exist.
func ErrAssigneeMissing(role Role) error {
	if role == RoleDoctor {
		return httperr.ErrNotFound(CodeDoctorNotFound, "doctor does not exist")
	}
	return httperr.ErrNotFound(CodePatientNotFound, "patient does not exist")
}

func ErrPatientNotFound() error {
	return httperr.ErrNotFound(CodePatientNotFound, "patient not found")
}

func ErrDoctorNotFound() error {
	return httperr.ErrNotFound(CodeDoctorNotFound, "doctor not found")
}

func ErrNoDoctorsFound() error {
	return httperr.ErrNotFound(CodeNoDoctorsForSpecialization, "no doctors found with given specialization")
}
