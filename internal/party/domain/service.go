package domain

import "context"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name      string    `json:"name"`
	Type      PartyType `json:"type"`
	GSTIN     string    `json:"gstin"`
	StateCode string    `json:"state_code"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
}

type ListRequest struct {
	Type PartyType
	Name string
}

type UpdateRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name,omitempty"`
	GSTIN     *string `json:"gstin,omitempty"`
	StateCode *string `json:"state_code,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	Address   *string `json:"address,omitempty"`
}

type Response struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       PartyType `json:"type"`
	GSTIN      string    `json:"gstin,omitempty"`
	StateCode  string    `json:"state_code,omitempty"`
	EntityType string    `json:"entity_type,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
}
