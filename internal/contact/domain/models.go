package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	companydomain "github.com/thelightspeed/crm/internal/company/domain"
	tagdomain "github.com/thelightspeed/crm/internal/tag/domain"
)

type Contact struct {
	ID        snowflake.ID           `gorm:"primaryKey" json:"id"`
	Name      string                 `gorm:"not null" json:"name"`
	Email     string                 `gorm:"not null" json:"email"`
	Phone     string                 `json:"phone,omitempty"`
	CompanyID *snowflake.ID          `gorm:"index" json:"company_id,omitempty"`
	Company   *companydomain.Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Notes     string                 `json:"notes,omitempty"`
	Tags      []tagdomain.Tag        `gorm:"many2many:contact_tags" json:"tags,omitempty"`
	CreatedAt time.Time              `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time              `gorm:"not null" json:"updated_at"`
}

func (Contact) TableName() string { return "contacts" }

// CompanyName is safe to call with no preloaded company.
func (c Contact) CompanyName() string {
	if c.Company == nil {
		return ""
	}
	return c.Company.Name
}
