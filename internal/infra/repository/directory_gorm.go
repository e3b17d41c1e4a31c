package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// --------------------------------------------------
// Patients
// --------------------------------------------------

type PatientGormDirectory struct {
	db *gorm.DB
}

func NewPatientGormDirectory(db *gorm.DB) *PatientGormDirectory {
	return &PatientGormDirectory{db: db}
}

func (d *PatientGormDirectory) GetPatient(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var p models.Patient
	if err := d.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (d *PatientGormDirectory) PatientExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := d.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Doctors
// --------------------------------------------------

type DoctorGormDirectory struct {
	db *gorm.DB
}

func NewDoctorGormDirectory(db *gorm.DB) *DoctorGormDirectory {
	return &DoctorGormDirectory{db: db}
}

func (d *DoctorGormDirectory) GetDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := d.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &doc, nil
}

func (d *DoctorGormDirectory) ListDoctorsBySpecialization(
	ctx context.Context,
	specialization string,
) ([]models.Doctor, error) {

	var doctors []models.Doctor
	if err := d.db.WithContext(ctx).
		Where("specialization = ?", specialization).
		Order("id ASC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

var (
	_ domain.PatientDirectory = (*PatientGormDirectory)(nil)
	_ domain.DoctorDirectory  = (*DoctorGormDirectory)(nil)
)
