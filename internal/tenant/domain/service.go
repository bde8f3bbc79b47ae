package domain

import "context"

type Service interface {
	Get(ctx context.Context) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
}

type UpdateRequest struct {
	Name    *string `json:"name,omitempty"`
	GSTIN   *string `json:"gstin,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type Response struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GSTIN      string `json:"gstin,omitempty"`
	StateCode  string `json:"state_code"`
	EntityType string `json:"entity_type,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
}
