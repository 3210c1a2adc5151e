package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/thelightspeed/crm/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListActivityFilter struct {
	Type          string
	ContactID     *snowflake.ID
	OpportunityID *snowflake.ID
	// From is inclusive; Before is exclusive (start of the day after the
	// requested end date).
	From      *time.Time
	Before    *time.Time
	Completed *bool
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, activity *Activity) error
	Update(ctx context.Context, db *gorm.DB, activity *Activity) error
	SetCompleted(ctx context.Context, db *gorm.DB, id snowflake.ID, completed bool) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Activity, error)
	List(ctx context.Context, db *gorm.DB, filter ListActivityFilter, page pagination.Pagination) ([]Activity, pagination.PageInfo, error)
	ListByContact(ctx context.Context, db *gorm.DB, contactID snowflake.ID) ([]Activity, error)
	ContactExists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error)
	OpportunityExists(ctx context.Context, db *gorm.DB, id snowflake.ID) (bool, error)
}
