package domain

import "errors"

var ErrInvalidTenant = errors.New("invalid_tenant")
