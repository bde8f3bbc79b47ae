// Package domain contains persistence models for customers and suppliers.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// PartyType distinguishes the two sides a party can sit on.
type PartyType string

const (
	PartyTypeCustomer PartyType = "customer"
	PartyTypeSupplier PartyType = "supplier"
)

// Party is a tenant-scoped counterparty. An empty GSTIN marks an
// unregistered (B2C) party; the state code is then maintained directly.
type Party struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	TenantID  snowflake.ID `gorm:"not null;index"`
	Name      string       `gorm:"type:text;not null"`
	Type      PartyType    `gorm:"type:text;not null;index"`
	GSTIN     string       `gorm:"type:text"`
	StateCode string       `gorm:"type:text"`
	Phone     string       `gorm:"type:text"`
	Email     string       `gorm:"type:text"`
	Address   string       `gorm:"type:text"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Party) TableName() string { return "parties" }
