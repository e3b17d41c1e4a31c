package visit

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateVisitInput struct {
	StartTime time.Time
	EndTime   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateVisit struct {
	repo  domain.Repository
	clock timezone.Clock
	loc   *time.Location
	log   *zap.Logger
}

// NewCreateVisit checks the quarter-hour grid on the wall clock of loc.
func NewCreateVisit(
	repo domain.Repository,
	clock timezone.Clock,
	loc *time.Location,
	log *zap.Logger,
) *CreateVisit {
	return &CreateVisit{
		repo:  repo,
		clock: clock,
		loc:   loc,
		log:   log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateVisit) Execute(
	ctx context.Context,
	in CreateVisitInput,
) (*models.Visit, error) {

	// --------------------------------------------------
	// 1. Slot rules
	// --------------------------------------------------
	if err := domain.ValidateSlot(in.StartTime, in.EndTime, uc.clock.Now(), uc.loc); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Start time uniqueness
	// --------------------------------------------------
	taken, err := domain.StartTimeTaken(ctx, uc.repo, in.StartTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrStartTimeConflict()
	}

	// --------------------------------------------------
	// 3. Persist (unique index settles concurrent inserts)
	// --------------------------------------------------
	v := &models.Visit{
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
	}

	if err := uc.repo.CreateVisit(ctx, v); err != nil {
		if errors.Is(err, domain.ErrStartTimeTaken) {
			uc.log.Warn("visit start time taken by concurrent insert",
				zap.Time("start_time", in.StartTime),
			)
			return nil, domain.ErrStartTimeConflict()
		}
		return nil, err
	}

	uc.log.Info("visit created",
		zap.Uint("visit_id", v.ID),
		zap.Time("start_time", v.StartTime),
		zap.Time("end_time", v.EndTime),
	)

	return v, nil
}
