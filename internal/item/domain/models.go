// Package domain contains persistence models for the item catalog.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Item is a catalog entry carrying the HSN code and GST rate that invoice
// lines default to.
type Item struct {
	ID             snowflake.ID `gorm:"primaryKey"`
	TenantID       snowflake.ID `gorm:"not null;index"`
	Name           string       `gorm:"type:text;not null"`
	HSNCode        string       `gorm:"type:text"`
	GSTRatePercent float64      `gorm:"type:numeric(5,2);not null;default:0"`
	Unit           string       `gorm:"type:text"`
	Rate           float64      `gorm:"type:numeric(14,2);not null;default:0"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Item) TableName() string { return "items" }
