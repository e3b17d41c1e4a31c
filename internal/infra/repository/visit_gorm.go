package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const startTimeIndex = "idx_visits_start_time"

type VisitGormRepository struct {
	db *gorm.DB
}

func NewVisitGormRepository(db *gorm.DB) *VisitGormRepository {
	return &VisitGormRepository{db: db}
}

// --------------------------------------------------
// Visit (create / read / delete)
// --------------------------------------------------

func (r *VisitGormRepository) CreateVisit(
	ctx context.Context,
	v *models.Visit,
) error {
	err := r.db.WithContext(ctx).Create(v).Error
	if httperr.IsUniqueViolation(err, startTimeIndex) {
		return fmt.Errorf("create visit at %s: %w", v.StartTime.Format(time.RFC3339), domain.ErrStartTimeTaken)
	}
	return err
}

func (r *VisitGormRepository) GetVisit(
	ctx context.Context,
	id uint,
) (*models.Visit, error) {

	var v models.Visit
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("visit %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return &v, nil
}

func (r *VisitGormRepository) DeleteVisit(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Visit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("visit %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *VisitGormRepository) ExistsByStartTime(
	ctx context.Context,
	start time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where("start_time = ?", start).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Visit (assignment)
// --------------------------------------------------

func (r *VisitGormRepository) AssignPatient(
	ctx context.Context,
	visitID uint,
	patientID uint,
) (bool, error) {
	return r.assign(ctx, visitID, "patient_id", patientID)
}

func (r *VisitGormRepository) AssignDoctor(
	ctx context.Context,
	visitID uint,
	doctorID uint,
) (bool, error) {
	return r.assign(ctx, visitID, "doctor_id", doctorID)
}

// assign is a conditional update: it only touches the row while the
// column is still NULL, so concurrent registrations cannot both win.
func (r *VisitGormRepository) assign(
	ctx context.Context,
	visitID uint,
	column string,
	refID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where("id = ? AND "+column+" IS NULL", visitID).
		Update(column, refID)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Visit (queries)
// --------------------------------------------------

func (r *VisitGormRepository) ListByPatient(
	ctx context.Context,
	patientID uint,
) ([]models.Visit, error) {

	var visits []models.Visit
	if err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("start_time ASC").
		Find(&visits).Error; err != nil {
		return nil, err
	}

	return visits, nil
}

func (r *VisitGormRepository) ListByDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.Visit, error) {

	var visits []models.Visit
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("start_time ASC").
		Find(&visits).Error; err != nil {
		return nil, err
	}

	return visits, nil
}

func (r *VisitGormRepository) ListByStartTimeBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Visit, error) {

	var visits []models.Visit
	if err := r.db.WithContext(ctx).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Order("start_time ASC").
		Find(&visits).Error; err != nil {
		return nil, err
	}

	return visits, nil
}

func (r *VisitGormRepository) ListByDoctorSpecializationAndStartTimeBetween(
	ctx context.Context,
	specialization string,
	from time.Time,
	to time.Time,
) ([]models.Visit, error) {

	var visits []models.Visit
	if err := r.db.WithContext(ctx).
		Select("visits.*").
		Joins("JOIN doctors ON doctors.id = visits.doctor_id").
		Where(
			"doctors.specialization = ? AND visits.start_time >= ? AND visits.start_time <= ?",
			specialization, from, to,
		).
		Order("visits.start_time ASC").
		Find(&visits).Error; err != nil {
		return nil, err
	}

	return visits, nil
}

// Compile-time check
var _ domain.Repository = (*VisitGormRepository)(nil)
