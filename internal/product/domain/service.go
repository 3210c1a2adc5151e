package domain

import (
	"context"
	"errors"
)

type CreateProductRequest struct {
	Name     string
	Quantity string
	Price    string
}

type UpdateProductRequest struct {
	ID       string
	Name     string
	Quantity string
	Price    string
}

type Service interface {
	Create(context.Context, CreateProductRequest) (Product, error)
	Update(context.Context, UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Product, error)
	// ListAll returns every product ordered by name.
	ListAll(context.Context) ([]Product, error)
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
