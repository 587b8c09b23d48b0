package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the kind of game a provider ships.
type Category string

const (
	CategorySlots Category = "slots"
	CategoryLive  Category = "live"
	CategoryTable Category = "table"
)

// Categories lists every accepted category in display order.
var Categories = []Category{CategorySlots, CategoryLive, CategoryTable}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Game represents a provider game in the catalog.
// (Provider, ExternalID) is the natural key; rows are never deleted.
type Game struct {
	ID         uint                `gorm:"primaryKey"`
	Provider   string              `gorm:"size:100;not null;uniqueIndex:idx_games_provider_external_id,priority:1"`
	ExternalID string              `gorm:"size:255;not null;uniqueIndex:idx_games_provider_external_id,priority:2"`
	Title      string              `gorm:"size:255;not null"`
	Category   Category            `gorm:"size:20;not null;index"`
	IsActive   bool                `gorm:"not null;default:false;index"`
	RTP        decimal.NullDecimal `gorm:"type:decimal(5,2)"`
	CreatedAt  time.Time           `gorm:"index"`
	UpdatedAt  time.Time
}
