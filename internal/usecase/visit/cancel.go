package visit

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
)

type CancelVisit struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewCancelVisit(
	repo domain.Repository,
	log *zap.Logger,
) *CancelVisit {
	return &CancelVisit{
		repo: repo,
		log:  log,
	}
}

// Execute removes the visit even when a patient or doctor is assigned.
func (uc *CancelVisit) Execute(
	ctx context.Context,
	visitID uint,
) error {

	v, err := loadVisit(ctx, uc.repo, visitID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteVisit(ctx, v.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrVisitNotFound()
		}
		return err
	}

	uc.log.Info("visit cancelled",
		zap.Uint("visit_id", v.ID),
		zap.Bool("had_patient", v.PatientID != nil),
		zap.Bool("had_doctor", v.DoctorID != nil),
	)

	return nil
}
