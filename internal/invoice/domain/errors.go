package domain

import "errors"

var (
	ErrInvalidTenant      = errors.New("invalid_tenant")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidParty       = errors.New("invalid_party")
	ErrInvalidDate        = errors.New("invalid_date")
	ErrNoLines            = errors.New("invalid_lines")
	ErrBlankDescription   = errors.New("invalid_description")
	ErrInvalidItem        = errors.New("invalid_item")
	ErrAlreadyCancelled   = errors.New("already_cancelled")
	ErrMissingLedgerSetup = errors.New("missing_ledger_setup")
)
