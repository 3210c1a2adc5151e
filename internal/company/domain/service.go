package domain

import (
	"context"
	"errors"

	"github.com/thelightspeed/crm/pkg/db/pagination"
)

type CreateCompanyRequest struct {
	Name    string
	Website string
	Address string
	Phone   string
}

type UpdateCompanyRequest struct {
	ID      string
	Name    string
	Website string
	Address string
	Phone   string
}

type ListCompanyRequest struct {
	Page pagination.Pagination
}

type ListCompanyResponse struct {
	pagination.PageInfo
	Companies []Company
}

type Service interface {
	Create(context.Context, CreateCompanyRequest) (Company, error)
	Update(context.Context, UpdateCompanyRequest) (Company, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Company, error)
	List(context.Context, ListCompanyRequest) (ListCompanyResponse, error)
	ListAll(context.Context) ([]Company, error)
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
