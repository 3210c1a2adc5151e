package domain

import (
	"context"
	"errors"
)

type CreateTagRequest struct {
	Name  string
	Color string
}

type UpdateTagRequest struct {
	ID    string
	Name  string
	Color string
}

type Service interface {
	Create(context.Context, CreateTagRequest) (Tag, error)
	Update(context.Context, UpdateTagRequest) (Tag, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Tag, error)
	ListAll(context.Context) ([]Tag, error)
}

var (
	ErrInvalidName   = errors.New("invalid_name")
	ErrDuplicateName = errors.New("duplicate_name")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
