package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead not found")

// Interest categories. One closed vocabulary; free-text variants like
// "Renting" are rejected at validation, not normalised.
const (
	InterestRent = "rent"
	InterestBuy  = "buy"
	InterestSell = "sell"
)

// Lead statuses. Transitions are deliberately unconstrained: the admin
// panel may move a lead from any status to any other.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
)

const DefaultLeadSource = "website"

// Lead is one prospective customer's submitted contact and preferences.
// ID and CreatedAt are set once at creation and never change.
type Lead struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	InterestedIn string    `json:"interested_in"`
	Borough      string    `json:"borough,omitempty"`
	Budget       *int      `json:"budget,omitempty"` // monthly, GBP
	Message      string    `json:"message,omitempty"`
	Source       string    `json:"source"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewLead builds a lead in its initial state. Input validation happens
// in the usecase layer; the factory only fills defaults.
func NewLead(name, email, phone, interestedIn, borough string, budget *int, message, source string) *Lead {
	if source == "" {
		source = DefaultLeadSource
	}
	return &Lead{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		InterestedIn: interestedIn,
		Borough:      borough,
		Budget:       budget,
		Message:      message,
		Source:       source,
		Status:       LeadStatusNew,
		CreatedAt:    time.Now(),
	}
}

func ValidInterest(v string) bool {
	return v == InterestRent || v == InterestBuy || v == InterestSell
}

func ValidLeadStatus(v string) bool {
	switch v {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted:
		return true
	}
	return false
}

// LeadFilter narrows FindAll. Zero-value dimensions match everything;
// set dimensions combine with AND.
type LeadFilter struct {
	Query        string // case-insensitive substring match on name or email
	Status       string
	InterestedIn string
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindAll(ctx context.Context, filter LeadFilter) ([]*Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
