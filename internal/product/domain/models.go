package domain

import "github.com/bwmarrin/snowflake"

type Product struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	Name       string       `gorm:"not null" json:"name"`
	Quantity   int64        `gorm:"not null" json:"quantity"`
	PriceCents int64        `gorm:"not null" json:"price_cents"`
}

func (Product) TableName() string { return "products" }
