package domain

import "errors"

var (
	ErrInvalidTenant      = errors.New("invalid_tenant")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidCode        = errors.New("invalid_code")
	ErrInvalidAccountKind = errors.New("invalid_account_kind")
	ErrInvalidVoucherType = errors.New("invalid_voucher_type")
	ErrInvalidDate        = errors.New("invalid_date")
	ErrInvalidAccount     = errors.New("invalid_account")
	ErrInvalidDirection   = errors.New("invalid_direction")
	ErrInvalidEntryAmount = errors.New("invalid_entry_amount")
	ErrTooFewEntries      = errors.New("invalid_entries")
	ErrUnbalancedEntries  = errors.New("unbalanced_entries")
)
