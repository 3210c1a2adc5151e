package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListOpportunityFilter struct {
	State     string
	ContactID *snowflake.ID
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, opportunity *Opportunity) error
	Update(ctx context.Context, db *gorm.DB, opportunity *Opportunity) error
	UpdateState(ctx context.Context, db *gorm.DB, id snowflake.ID, state string) error
	// Delete removes the opportunity and its activities, children first.
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Opportunity, error)
	List(ctx context.Context, db *gorm.DB, filter ListOpportunityFilter, page pagination.Pagination) ([]Opportunity, pagination.PageInfo, error)
	// ListAll returns every opportunity, newest first, for the pipeline.
	ListAll(ctx context.Context, db *gorm.DB) ([]Opportunity, error)
	ListByContact(ctx context.Context, db *gorm.DB, contactID snowflake.ID) ([]Opportunity, error)
	ContactExists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error)
}
