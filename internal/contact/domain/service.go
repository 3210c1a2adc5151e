package domain

import (
	"context"
	"errors"

	"github.com/thelightspeed/crm/pkg/db/pagination"
)

// Grouping modes accepted by the list screen.
const (
	GroupByCompany = "empresa"
	GroupByTag     = "etiqueta"
)

type CreateContactRequest struct {
	Name      string
	Email     string
	Phone     string
	CompanyID string
	Notes     string
	TagIDs    []string
}

type UpdateContactRequest struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CompanyID string
	Notes     string
	TagIDs    []string
}

type ListContactRequest struct {
	// Query matches name, email, phone or company name, case-insensitively.
	Query     string
	CompanyID string
	TagID     string
	// Group is empty, GroupByCompany or GroupByTag; unknown values are
	// treated as empty.
	Group string
	Page  pagination.Pagination
}

type ListContactResponse struct {
	pagination.PageInfo
	Contacts []Contact
	Group    string
}

type Service interface {
	Create(context.Context, CreateContactRequest) (Contact, error)
	Update(context.Context, UpdateContactRequest) (Contact, error)
	// Delete cascades to the contact's opportunities and activities.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Contact, error)
	List(context.Context, ListContactRequest) (ListContactResponse, error)
	// ListAll returns every contact ordered by name, for select inputs.
	ListAll(context.Context) ([]Contact, error)
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidCompany = errors.New("invalid_company")
	ErrInvalidTag     = errors.New("invalid_tag")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
