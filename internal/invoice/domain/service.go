package domain

import (
	"context"
	"time"

	"github.com/bharatbooks/bharatbooks/internal/gst"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*InvoiceResponse, error)
	List(ctx context.Context, req ListRequest) ([]InvoiceResponse, error)
	GetByID(ctx context.Context, id string) (*InvoiceResponse, error)
	Cancel(ctx context.Context, id string) (*InvoiceResponse, error)
}

type LineRequest struct {
	ItemID         *string `json:"item_id,omitempty"`
	Description    string  `json:"description"`
	HSNCode        string  `json:"hsn_code"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	Rate           float64 `json:"rate"`
	GSTRatePercent float64 `json:"gst_rate_percent"`
}

type CreateRequest struct {
	PartyID     string                 `json:"party_id"`
	InvoiceDate time.Time              `json:"invoice_date"`
	Lines       []LineRequest          `json:"lines"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type ListRequest struct {
	PartyID string
	From    *time.Time
	To      *time.Time
	Status  InvoiceStatus
}

type LineResponse struct {
	Position       int     `json:"position"`
	Description    string  `json:"description"`
	HSNCode        string  `json:"hsn_code,omitempty"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit,omitempty"`
	Rate           float64 `json:"rate"`
	Amount         float64 `json:"amount"`
	GSTRatePercent float64 `json:"gst_rate_percent"`
	CGST           float64 `json:"cgst"`
	SGST           float64 `json:"sgst"`
	IGST           float64 `json:"igst"`
}

type InvoiceResponse struct {
	ID            string         `json:"id"`
	InvoiceNumber string         `json:"invoice_number"`
	PartyID       string         `json:"party_id"`
	PartyName     string         `json:"party_name,omitempty"`
	InvoiceDate   time.Time      `json:"invoice_date"`
	SupplyType    gst.SupplyType `json:"supply_type"`
	Subtotal      float64        `json:"subtotal"`
	CGST          float64        `json:"cgst"`
	SGST          float64        `json:"sgst"`
	IGST          float64        `json:"igst"`
	TotalTax      float64        `json:"total_tax"`
	GrandTotal    float64        `json:"grand_total"`
	RoundOff      float64        `json:"round_off"`
	AmountInWords string         `json:"amount_in_words"`
	Status        InvoiceStatus  `json:"status"`
	Lines         []LineResponse `json:"lines"`
}
