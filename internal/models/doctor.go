package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName      string `gorm:"size:100;not null" json:"first_name"`
	LastName       string `gorm:"size:100;not null" json:"last_name"`
	Specialization string `gorm:"size:100;not null;index" json:"specialization"`
	Email          string `gorm:"size:100;uniqueIndex" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
