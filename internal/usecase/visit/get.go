package visit

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/visit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type GetVisit struct {
	repo domain.Repository
}

func NewGetVisit(repo domain.Repository) *GetVisit {
	return &GetVisit{repo: repo}
}

func (uc *GetVisit) Execute(ctx context.Context, visitID uint) (*models.Visit, error) {
	return loadVisit(ctx, uc.repo, visitID)
}
