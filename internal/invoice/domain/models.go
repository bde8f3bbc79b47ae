// Package domain contains the invoice aggregate: a tax invoice header with
// its ordered lines and the GST totals computed at issue time.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"

	"github.com/bharatbooks/bharatbooks/internal/gst"
)

// InvoiceStatus is the lifecycle state of an invoice. There is no
// edit-in-place: a wrong invoice is cancelled and superseded.
type InvoiceStatus string

const (
	InvoiceStatusIssued    InvoiceStatus = "issued"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// Invoice is one issued tax invoice. The supply type and every amount are
// fixed when the invoice is created; later party or tenant edits never
// retroact into issued documents.
type Invoice struct {
	ID            snowflake.ID      `gorm:"primaryKey"`
	TenantID      snowflake.ID      `gorm:"not null;index;uniqueIndex:ux_invoices_tenant_number,priority:1"`
	PartyID       snowflake.ID      `gorm:"not null;index"`
	InvoiceNumber string            `gorm:"type:text;not null;uniqueIndex:ux_invoices_tenant_number,priority:2"`
	SeqNo         int64             `gorm:"not null"`
	InvoiceDate   time.Time         `gorm:"not null;index"`
	SupplyType    gst.SupplyType    `gorm:"type:text;not null"`
	Subtotal      float64           `gorm:"type:numeric(14,2);not null"`
	CGST          float64           `gorm:"type:numeric(14,2);not null"`
	SGST          float64           `gorm:"type:numeric(14,2);not null"`
	IGST          float64           `gorm:"type:numeric(14,2);not null"`
	TotalTax      float64           `gorm:"type:numeric(14,2);not null"`
	GrandTotal    float64           `gorm:"type:numeric(14,2);not null"`
	RoundOff      float64           `gorm:"type:numeric(14,2);not null"`
	AmountInWords string            `gorm:"type:text;not null"`
	Status        InvoiceStatus     `gorm:"type:text;not null;index"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceLine is one ordered line of an invoice. Amount is always derived
// from quantity and rate on the server, never taken from the client.
type InvoiceLine struct {
	ID             snowflake.ID  `gorm:"primaryKey"`
	InvoiceID      snowflake.ID  `gorm:"not null;index"`
	ItemID         *snowflake.ID `gorm:"index"`
	Position       int           `gorm:"not null"`
	Description    string        `gorm:"type:text;not null"`
	HSNCode        string        `gorm:"type:text"`
	Quantity       float64       `gorm:"type:numeric(14,3);not null"`
	Unit           string        `gorm:"type:text"`
	Rate           float64       `gorm:"type:numeric(14,2);not null"`
	Amount         float64       `gorm:"type:numeric(14,2);not null"`
	GSTRatePercent float64       `gorm:"type:numeric(5,2);not null"`
	CGST           float64       `gorm:"type:numeric(14,2);not null"`
	SGST           float64       `gorm:"type:numeric(14,2);not null"`
	IGST           float64       `gorm:"type:numeric(14,2);not null"`
	CreatedAt      time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (InvoiceLine) TableName() string { return "invoice_lines" }
