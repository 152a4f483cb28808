package entity

import (
	"context"
	"errors"
	"strings"
	"time"
)

// Lead statuses. A status is settable only at creation time; there are no
// transitions once the record is persisted.
const (
	StatusNew          = "New"
	StatusEngaged      = "Engaged"
	StatusProposalSent = "Proposal Sent"
	StatusClosedWon    = "Closed-Won"
	StatusClosedLost   = "Closed-Lost"
)

// Statuses lists every valid lead status, in display order.
var Statuses = []string{
	StatusNew,
	StatusEngaged,
	StatusProposalSent,
	StatusClosedWon,
	StatusClosedLost,
}

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrLeadNotFound       = errors.New("lead not found")
)

// ValidationError is a schema-level rejection raised by the store layer,
// the second line of defense behind the usecase checks.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeEmail lowercases and trims an address. The normalized form is the
// uniqueness key across all leads.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// NewLead builds an unpersisted lead with normalized fields. The ID is
// assigned by the store on insert; CreatedAt is assigned here, never by the
// client.
func NewLead(name, email, status string) *Lead {
	if status == "" {
		status = StatusNew
	}
	return &Lead{
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return &ValidationError{Message: "Name is required"}
	}
	if l.Email == "" {
		return &ValidationError{Message: "Email is required"}
	}
	if !IsValidStatus(l.Status) {
		return &ValidationError{Message: "`" + l.Status + "` is not a valid status"}
	}
	return nil
}

type LeadRepositoryInterface interface {
	// FindAll returns every lead ordered by creation time descending.
	FindAll(ctx context.Context) ([]*Lead, error)

	// FindByEmail looks up a lead by its normalized email. Returns
	// ErrLeadNotFound when no lead holds that address.
	FindByEmail(ctx context.Context, email string) (*Lead, error)

	// Insert persists a new lead and fills in its store-assigned ID.
	Insert(ctx context.Context, lead *Lead) error
}
