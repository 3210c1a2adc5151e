package domain

import "github.com/bwmarrin/snowflake"

// DefaultColor is applied when a tag is created without a color.
const DefaultColor = "#3498db"

type Tag struct {
	ID    snowflake.ID `gorm:"primaryKey" json:"id"`
	Name  string       `gorm:"not null;uniqueIndex" json:"name"`
	Color string       `gorm:"not null;default:'#3498db'" json:"color"`
}

func (Tag) TableName() string { return "tags" }
