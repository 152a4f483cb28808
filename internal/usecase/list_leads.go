package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/leadtrack/internal/entity"
)

type ListLeadsUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Logger *zap.Logger
}

func NewListLeadsUseCase(repo entity.LeadRepositoryInterface, logger *zap.Logger) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo, Logger: logger}
}

// Execute returns every lead, newest first. An empty store yields an empty
// slice, not an error.
func (uc *ListLeadsUseCase) Execute(ctx context.Context) ([]*entity.Lead, error) {
	leads, err := uc.Repo.FindAll(ctx)
	if err != nil {
		uc.Logger.Error("lead listing failed", zap.Error(err))
		return nil, &TechnicalError{
			Code:    "STORE_UNAVAILABLE",
			Message: "Failed to retrieve leads",
		}
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}
	return leads, nil
}
