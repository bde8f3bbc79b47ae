// Package domain contains persistence models for tenant company profiles.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Tenant is one registered business on the platform. Its state code is the
// seller side of every supply classification.
type Tenant struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	Name      string       `gorm:"type:text;not null"`
	GSTIN     string       `gorm:"type:text"`
	StateCode string       `gorm:"type:text;not null"`
	Email     string       `gorm:"type:text"`
	Phone     string       `gorm:"type:text"`
	Address   string       `gorm:"type:text"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Tenant) TableName() string { return "tenants" }
