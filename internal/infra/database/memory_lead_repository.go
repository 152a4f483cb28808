package database

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/xavierca1/leadtrack/internal/entity"
)

// MemoryLeadRepository is an in-process store used by tests and local
// hacking. It enforces the same contract as the real stores: schema
// validation on insert and email uniqueness.
type MemoryLeadRepository struct {
	mu    sync.RWMutex
	leads []*entity.Lead
}

func NewMemoryLeadRepository() *MemoryLeadRepository {
	return &MemoryLeadRepository{}
}

func (r *MemoryLeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leads := make([]*entity.Lead, 0, len(r.leads))
	for _, l := range r.leads {
		copy := *l
		leads = append(leads, &copy)
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})

	return leads, nil
}

func (r *MemoryLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.leads {
		if l.Email == email {
			copy := *l
			return &copy, nil
		}
	}

	return nil, entity.ErrLeadNotFound
}

func (r *MemoryLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	if err := lead.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.leads {
		if l.Email == lead.Email {
			return entity.ErrEmailAlreadyExists
		}
	}

	lead.ID = uuid.New().String()
	stored := *lead
	r.leads = append(r.leads, &stored)

	return nil
}

// Count reports how many leads are held; test helper.
func (r *MemoryLeadRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads)
}
