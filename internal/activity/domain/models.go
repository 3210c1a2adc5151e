package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
)

// Activity types, stored as-is.
const (
	TypeCall    = "llamada"
	TypeEmail   = "email"
	TypeMeeting = "reunion"
	TypeTask    = "tarea"
)

// Types returns the activity types in display order.
func Types() []string {
	return []string{TypeCall, TypeEmail, TypeMeeting, TypeTask}
}

// IsValidType reports whether t names an activity type.
func IsValidType(t string) bool {
	switch t {
	case TypeCall, TypeEmail, TypeMeeting, TypeTask:
		return true
	default:
		return false
	}
}

type Activity struct {
	ID            snowflake.ID                   `gorm:"primaryKey" json:"id"`
	Type          string                         `gorm:"not null" json:"type"`
	Title         string                         `gorm:"not null" json:"title"`
	Description   string                         `json:"description,omitempty"`
	OccursAt      time.Time                      `gorm:"not null;index" json:"occurs_at"`
	ContactID     *snowflake.ID                  `gorm:"index" json:"contact_id,omitempty"`
	Contact       *contactdomain.Contact         `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	OpportunityID *snowflake.ID                  `gorm:"index" json:"opportunity_id,omitempty"`
	Opportunity   *opportunitydomain.Opportunity `gorm:"foreignKey:OpportunityID" json:"opportunity,omitempty"`
	Completed     bool                           `gorm:"not null;default:false" json:"completed"`
	CreatedAt     time.Time                      `gorm:"not null" json:"created_at"`
}

func (Activity) TableName() string { return "activities" }
