package domain

import (
	"context"
	"time"
)

type Service interface {
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*AccountResponse, error)
	ListAccounts(ctx context.Context) ([]AccountResponse, error)
	CreateVoucher(ctx context.Context, req CreateVoucherRequest) (*VoucherResponse, error)
	List(ctx context.Context, req ListRequest) ([]VoucherResponse, error)
	GetByID(ctx context.Context, id string) (*VoucherResponse, error)
}

type CreateAccountRequest struct {
	Name string      `json:"name"`
	Code string      `json:"code"`
	Kind AccountKind `json:"kind"`
}

type AccountResponse struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Code string      `json:"code"`
	Kind AccountKind `json:"kind"`
}

type EntryRequest struct {
	AccountID string         `json:"account_id"`
	Direction EntryDirection `json:"direction"`
	Amount    float64        `json:"amount"`
}

type CreateVoucherRequest struct {
	Type      VoucherType    `json:"type"`
	Date      time.Time      `json:"date"`
	PartyID   *string        `json:"party_id,omitempty"`
	Narration string         `json:"narration"`
	Entries   []EntryRequest `json:"entries"`
}

type ListRequest struct {
	Type VoucherType
	From *time.Time
	To   *time.Time
}

type EntryResponse struct {
	AccountID   string         `json:"account_id"`
	AccountName string         `json:"account_name"`
	AccountKind AccountKind    `json:"account_kind"`
	Direction   EntryDirection `json:"direction"`
	Amount      float64        `json:"amount"`
}

type VoucherResponse struct {
	ID            string          `json:"id"`
	VoucherNumber string          `json:"voucher_number"`
	Type          VoucherType     `json:"type"`
	Date          time.Time       `json:"date"`
	PartyID       string          `json:"party_id,omitempty"`
	Narration     string          `json:"narration,omitempty"`
	Entries       []EntryResponse `json:"entries"`
}
