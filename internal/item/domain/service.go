package domain

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name           string  `json:"name"`
	HSNCode        string  `json:"hsn_code"`
	GSTRatePercent float64 `json:"gst_rate_percent"`
	Unit           string  `json:"unit"`
	Rate           float64 `json:"rate"`
}

type UpdateRequest struct {
	ID             string   `json:"id"`
	Name           *string  `json:"name,omitempty"`
	HSNCode        *string  `json:"hsn_code,omitempty"`
	GSTRatePercent *float64 `json:"gst_rate_percent,omitempty"`
	Unit           *string  `json:"unit,omitempty"`
	Rate           *float64 `json:"rate,omitempty"`
}

type Response struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	HSNCode        string  `json:"hsn_code,omitempty"`
	GSTRatePercent float64 `json:"gst_rate_percent"`
	Unit           string  `json:"unit,omitempty"`
	Rate           float64 `json:"rate"`
}
