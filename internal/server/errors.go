package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	invoicedomain "github.com/bharatbooks/bharatbooks/internal/invoice/domain"
	itemdomain "github.com/bharatbooks/bharatbooks/internal/item/domain"
	partydomain "github.com/bharatbooks/bharatbooks/internal/party/domain"
	payrolldomain "github.com/bharatbooks/bharatbooks/internal/payroll/domain"
	returnsdomain "github.com/bharatbooks/bharatbooks/internal/returns/domain"
	tenantdomain "github.com/bharatbooks/bharatbooks/internal/tenant/domain"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
	"github.com/bharatbooks/bharatbooks/pkg/db"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   strings.TrimPrefix(code, "invalid_"),
					Code:    code,
					Message: strings.ReplaceAll(code, "_", " "),
				},
			},
		}
	}

	switch {
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "conflict",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, tenantdomain.ErrInvalidTenant),
		errors.Is(err, tenantdomain.ErrInvalidGSTIN),
		errors.Is(err, tenantdomain.ErrInvalidName),
		errors.Is(err, partydomain.ErrInvalidTenant),
		errors.Is(err, partydomain.ErrInvalidID),
		errors.Is(err, partydomain.ErrInvalidName),
		errors.Is(err, partydomain.ErrInvalidType),
		errors.Is(err, partydomain.ErrInvalidGSTIN),
		errors.Is(err, partydomain.ErrGSTINStateMismatch),
		errors.Is(err, itemdomain.ErrInvalidTenant),
		errors.Is(err, itemdomain.ErrInvalidID),
		errors.Is(err, itemdomain.ErrInvalidName),
		errors.Is(err, itemdomain.ErrInvalidHSN),
		errors.Is(err, invoicedomain.ErrInvalidTenant),
		errors.Is(err, invoicedomain.ErrInvalidID),
		errors.Is(err, invoicedomain.ErrInvalidParty),
		errors.Is(err, invoicedomain.ErrInvalidDate),
		errors.Is(err, invoicedomain.ErrNoLines),
		errors.Is(err, invoicedomain.ErrBlankDescription),
		errors.Is(err, invoicedomain.ErrInvalidItem),
		errors.Is(err, voucherdomain.ErrInvalidTenant),
		errors.Is(err, voucherdomain.ErrInvalidID),
		errors.Is(err, voucherdomain.ErrInvalidName),
		errors.Is(err, voucherdomain.ErrInvalidCode),
		errors.Is(err, voucherdomain.ErrInvalidAccountKind),
		errors.Is(err, voucherdomain.ErrInvalidVoucherType),
		errors.Is(err, voucherdomain.ErrInvalidDate),
		errors.Is(err, voucherdomain.ErrInvalidAccount),
		errors.Is(err, voucherdomain.ErrInvalidDirection),
		errors.Is(err, voucherdomain.ErrInvalidEntryAmount),
		errors.Is(err, voucherdomain.ErrTooFewEntries),
		errors.Is(err, voucherdomain.ErrUnbalancedEntries),
		errors.Is(err, returnsdomain.ErrInvalidTenant),
		errors.Is(err, returnsdomain.ErrInvalidPeriod),
		errors.Is(err, payrolldomain.ErrInvalidTenant),
		errors.Is(err, payrolldomain.ErrInvalidID),
		errors.Is(err, payrolldomain.ErrInvalidName),
		errors.Is(err, payrolldomain.ErrInvalidPeriod):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, tenantdomain.ErrNotFound),
		errors.Is(err, partydomain.ErrNotFound),
		errors.Is(err, itemdomain.ErrNotFound),
		errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, voucherdomain.ErrNotFound),
		errors.Is(err, payrolldomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, invoicedomain.ErrAlreadyCancelled),
		db.IsDuplicateKeyErr(err):
		return true
	default:
		return false
	}
}
