package domain

import (
	"context"
	"time"
)

type Service interface {
	CreateEmployee(ctx context.Context, req EmployeeRequest) (*EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (*EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id string, req EmployeeRequest) (*EmployeeResponse, error)
	Generate(ctx context.Context, month, year int) (*GenerateResult, error)
	ListRecords(ctx context.Context, month, year int) ([]RecordResponse, error)
}

type EmployeeRequest struct {
	Name        string     `json:"name"`
	Designation string     `json:"designation"`
	JoiningDate *time.Time `json:"joining_date,omitempty"`
	Salary      *float64   `json:"salary,omitempty"`
	Basic       *float64   `json:"basic,omitempty"`
	HRA         *float64   `json:"hra,omitempty"`
	Special     *float64   `json:"special,omitempty"`
	PF          *float64   `json:"pf,omitempty"`
	PT          *float64   `json:"pt,omitempty"`
}

type EmployeeResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Designation string     `json:"designation,omitempty"`
	JoiningDate *time.Time `json:"joining_date,omitempty"`
	Salary      *float64   `json:"salary,omitempty"`
	Basic       *float64   `json:"basic,omitempty"`
	HRA         *float64   `json:"hra,omitempty"`
	Special     *float64   `json:"special,omitempty"`
	PF          *float64   `json:"pf,omitempty"`
	PT          *float64   `json:"pt,omitempty"`
}

// GenerateResult reports one generation run. Reruns over an already generated
// period count skips, never errors.
type GenerateResult struct {
	CreatedCount int `json:"created_count"`
	SkippedCount int `json:"skipped_count"`
}

type ComponentResponse struct {
	Name   string        `json:"name"`
	Type   ComponentType `json:"type"`
	Amount float64       `json:"amount"`
}

type RecordResponse struct {
	ID              string              `json:"id"`
	EmployeeID      string              `json:"employee_id"`
	EmployeeName    string              `json:"employee_name,omitempty"`
	Period          string              `json:"period"`
	Month           int                 `json:"month"`
	Year            int                 `json:"year"`
	Basic           float64             `json:"basic"`
	HRA             float64             `json:"hra"`
	Special         float64             `json:"special"`
	PF              float64             `json:"pf"`
	PT              float64             `json:"pt"`
	TotalEarnings   float64             `json:"total_earnings"`
	TotalDeductions float64             `json:"total_deductions"`
	NetSalary       float64             `json:"net_salary"`
	Components      []ComponentResponse `json:"components"`
}
