package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/leadtrack/internal/entity"
)

type CreateLeadInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status,omitempty"`
}

// LeadEventPublisher emits a lead.created event after a successful insert.
// Publishing is best effort and never fails the create itself.
type LeadEventPublisher interface {
	PublishLeadCreated(ctx context.Context, lead *entity.Lead) error
}

type CreateLeadUseCase struct {
	Repo   entity.LeadRepositoryInterface
	Events LeadEventPublisher
	Logger *zap.Logger
}

func NewCreateLeadUseCase(repo entity.LeadRepositoryInterface, events LeadEventPublisher, logger *zap.Logger) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:   repo,
		Events: events,
		Logger: logger,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	// Presence check runs on the raw input, before any trimming. A
	// whitespace-only name passes here and is caught by the store-level
	// validation instead.
	if input.Name == "" || input.Email == "" {
		return nil, &DomainError{
			Code:    "MISSING_FIELDS",
			Message: "Name and email are required",
		}
	}

	normalized := entity.NormalizeEmail(input.Email)

	existing, err := uc.Repo.FindByEmail(ctx, normalized)
	if err != nil && !errors.Is(err, entity.ErrLeadNotFound) {
		uc.Logger.Error("duplicate check failed", zap.Error(err), zap.String("email", normalized))
		return nil, &DomainError{
			Code:    "CREATE_FAILED",
			Message: "Failed to create lead",
		}
	}
	if existing != nil {
		return nil, &DomainError{
			Code:    "EMAIL_EXISTS",
			Message: "Email already exists",
		}
	}

	lead := entity.NewLead(input.Name, input.Email, input.Status)

	if err := uc.Repo.Insert(ctx, lead); err != nil {
		var vErr *entity.ValidationError
		switch {
		case errors.As(err, &vErr):
			return nil, &DomainError{
				Code:    "VALIDATION_ERROR",
				Message: vErr.Message,
			}
		case errors.Is(err, entity.ErrEmailAlreadyExists):
			// The store's unique index caught a concurrent create.
			return nil, &DomainError{
				Code:    "EMAIL_EXISTS",
				Message: "Email already exists",
			}
		default:
			uc.Logger.Error("lead insert failed", zap.Error(err), zap.String("email", lead.Email))
			return nil, &DomainError{
				Code:    "CREATE_FAILED",
				Message: "Failed to create lead",
			}
		}
	}

	if uc.Events != nil {
		if err := uc.Events.PublishLeadCreated(ctx, lead); err != nil {
			uc.Logger.Warn("lead.created publish failed", zap.Error(err), zap.String("lead_id", lead.ID))
		}
	}

	return lead, nil
}
