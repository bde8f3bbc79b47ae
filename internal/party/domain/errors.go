package domain

import "errors"

var (
	ErrInvalidTenant      = errors.New("invalid_tenant")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidType        = errors.New("invalid_type")
	ErrInvalidGSTIN       = errors.New("invalid_gstin")
	ErrGSTINStateMismatch = errors.New("invalid_state_code")
)
