package domain

import "errors"

var (
	ErrInvalidTenant = errors.New("invalid_tenant")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidPeriod = errors.New("invalid_period")
)
