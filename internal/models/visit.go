package models

import "time"

// Visit is a fixed time slot that holds at most one patient and one doctor.
// A nil PatientID or DoctorID means the role is unassigned.
type Visit struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime time.Time `gorm:"not null;uniqueIndex:idx_visits_start_time" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	PatientID *uint    `gorm:"index" json:"patient_id"`
	Patient   *Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	DoctorID *uint   `gorm:"index" json:"doctor_id"`
	Doctor   *Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
