package domain

import (
	"context"
	"errors"

	"github.com/thelightspeed/crm/pkg/db/pagination"
)

type CreateOpportunityRequest struct {
	Title     string
	Value     string
	State     string
	CloseDate string
	ContactID string
	Notes     string
}

type UpdateOpportunityRequest struct {
	ID        string
	Title     string
	Value     string
	State     string
	CloseDate string
	ContactID string
	Notes     string
}

type ListOpportunityRequest struct {
	State     string
	ContactID string
	Page      pagination.Pagination
}

type ListOpportunityResponse struct {
	pagination.PageInfo
	Opportunities []Opportunity
}

// PipelineBucket is one kanban column.
type PipelineBucket struct {
	State         string
	Opportunities []Opportunity
}

type Pipeline struct {
	Buckets []PipelineBucket
}

type Service interface {
	Create(context.Context, CreateOpportunityRequest) (Opportunity, error)
	Update(context.Context, UpdateOpportunityRequest) (Opportunity, error)
	// Delete cascades to the opportunity's activities.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Opportunity, error)
	List(context.Context, ListOpportunityRequest) (ListOpportunityResponse, error)
	ListByContact(ctx context.Context, contactID string) ([]Opportunity, error)
	// ListAll returns every opportunity newest first, for select inputs.
	ListAll(context.Context) ([]Opportunity, error)
	// Pipeline partitions every opportunity into the four state buckets.
	Pipeline(context.Context) (Pipeline, error)
	// UpdateState applies the state only when it is a recognized member;
	// anything else returns ErrInvalidState and changes nothing.
	UpdateState(ctx context.Context, id, state string) error
}

var (
	ErrInvalidTitle     = errors.New("invalid_title")
	ErrInvalidValue     = errors.New("invalid_value")
	ErrInvalidCloseDate = errors.New("invalid_close_date")
	ErrInvalidContact   = errors.New("invalid_contact")
	ErrInvalidState     = errors.New("invalid_state")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("not_found")
)
