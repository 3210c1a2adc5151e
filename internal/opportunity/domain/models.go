package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	"gorm.io/datatypes"
)

// Pipeline states, stored as-is.
const (
	StateNew        = "nuevo"
	StateInProgress = "en_progreso"
	StateWon        = "ganado"
	StateLost       = "perdido"
)

// States returns the pipeline states in board order.
func States() []string {
	return []string{StateNew, StateInProgress, StateWon, StateLost}
}

// IsValidState reports whether s names a pipeline state.
func IsValidState(s string) bool {
	switch s {
	case StateNew, StateInProgress, StateWon, StateLost:
		return true
	default:
		return false
	}
}

type Opportunity struct {
	ID         snowflake.ID           `gorm:"primaryKey" json:"id"`
	Title      string                 `gorm:"not null" json:"title"`
	ValueCents int64                  `gorm:"not null" json:"value_cents"`
	State      string                 `gorm:"not null;default:'nuevo'" json:"state"`
	CloseDate  datatypes.Date         `gorm:"not null" json:"close_date"`
	ContactID  snowflake.ID           `gorm:"not null;index" json:"contact_id"`
	Contact    *contactdomain.Contact `gorm:"foreignKey:ContactID" json:"contact,omitempty"`
	Notes      string                 `json:"notes,omitempty"`
	CreatedAt  time.Time              `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time              `gorm:"not null" json:"updated_at"`
}

func (Opportunity) TableName() string { return "opportunities" }

// ContactName is safe to call with no preloaded contact.
func (o Opportunity) ContactName() string {
	if o.Contact == nil {
		return ""
	}
	return o.Contact.Name
}
