package domain

import (
	"context"
	"errors"

	"github.com/thelightspeed/crm/pkg/db/pagination"
)

type CreateActivityRequest struct {
	Type          string
	Title         string
	Description   string
	// When is the scheduled date/time; empty means now.
	When          string
	ContactID     string
	OpportunityID string
	Completed     bool
}

type UpdateActivityRequest struct {
	ID            string
	Type          string
	Title         string
	Description   string
	When          string
	ContactID     string
	OpportunityID string
	Completed     bool
}

type ListActivityRequest struct {
	Type          string
	ContactID     string
	OpportunityID string
	// DateFrom/DateTo are calendar dates; the range is inclusive on both
	// ends and unparsable values leave the bound unapplied.
	DateFrom  string
	DateTo    string
	// Completed is tri-state: nil means either.
	Completed *bool
	Page      pagination.Pagination
}

type ListActivityResponse struct {
	pagination.PageInfo
	Activities []Activity
}

type Service interface {
	Create(context.Context, CreateActivityRequest) (Activity, error)
	Update(context.Context, UpdateActivityRequest) (Activity, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Activity, error)
	List(context.Context, ListActivityRequest) (ListActivityResponse, error)
	ListByContact(ctx context.Context, contactID string) ([]Activity, error)
	// ToggleCompleted flips the completed flag unconditionally.
	ToggleCompleted(ctx context.Context, id string) error
}

var (
	ErrInvalidType        = errors.New("invalid_type")
	ErrInvalidTitle       = errors.New("invalid_title")
	ErrInvalidWhen        = errors.New("invalid_when")
	ErrInvalidContact     = errors.New("invalid_contact")
	ErrInvalidOpportunity = errors.New("invalid_opportunity")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
)
