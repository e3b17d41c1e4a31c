package dto

import (
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type VisitDTO struct {
	ID        uint      `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	PatientID *uint     `json:"patient_id"`
	DoctorID  *uint     `json:"doctor_id"`
	Available bool      `json:"available"`
}

func NewVisitDTO(v *models.Visit) VisitDTO {
	return VisitDTO{
		ID:        v.ID,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		PatientID: v.PatientID,
		DoctorID:  v.DoctorID,
		Available: domain.IsAvailable(v),
	}
}

func NewVisitDTOs(visits []models.Visit) []VisitDTO {
	out := make([]VisitDTO, 0, len(visits))
	for i := range visits {
		out = append(out, NewVisitDTO(&visits[i]))
	}
	return out
}
