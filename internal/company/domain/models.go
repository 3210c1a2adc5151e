package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Company struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"not null" json:"name"`
	Website   string       `json:"website,omitempty"`
	Address   string       `json:"address,omitempty"`
	Phone     string       `json:"phone,omitempty"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
}

func (Company) TableName() string { return "companies" }
