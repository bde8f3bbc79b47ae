package domain

import "errors"

var (
	ErrInvalidTenant = errors.New("invalid_tenant")
	ErrNotFound      = errors.New("not_found")
	ErrInvalidGSTIN  = errors.New("invalid_gstin")
	ErrInvalidName   = errors.New("invalid_name")
)
