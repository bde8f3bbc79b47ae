// Package domain contains employee records and the monthly payroll models.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Employee is a tenant-scoped staff record. Either a flat gross salary or an
// explicit component structure can be set; the structure wins when both are
// present.
type Employee struct {
	ID          snowflake.ID `gorm:"primaryKey"`
	TenantID    snowflake.ID `gorm:"not null;index"`
	Name        string       `gorm:"type:text;not null"`
	Designation string       `gorm:"type:text"`
	JoiningDate *time.Time
	Salary      *float64 `gorm:"type:numeric(14,2)"`
	Basic       *float64 `gorm:"type:numeric(14,2)"`
	HRA         *float64 `gorm:"type:numeric(14,2)"`
	Special     *float64 `gorm:"type:numeric(14,2)"`
	PF          *float64 `gorm:"type:numeric(14,2)"`
	PT          *float64 `gorm:"type:numeric(14,2)"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Employee) TableName() string { return "employees" }

// PayrollRecord is one employee's pay for one period. The unique index makes
// generation idempotent: a rerun conflicts instead of duplicating.
type PayrollRecord struct {
	ID              snowflake.ID `gorm:"primaryKey"`
	TenantID        snowflake.ID `gorm:"not null;index;uniqueIndex:ux_payroll_tenant_emp_period,priority:1"`
	EmployeeID      snowflake.ID `gorm:"not null;uniqueIndex:ux_payroll_tenant_emp_period,priority:2"`
	Period          string       `gorm:"type:text;not null"`
	Month           int          `gorm:"not null;uniqueIndex:ux_payroll_tenant_emp_period,priority:3"`
	Year            int          `gorm:"not null;uniqueIndex:ux_payroll_tenant_emp_period,priority:4"`
	Basic           float64      `gorm:"type:numeric(14,2);not null"`
	HRA             float64      `gorm:"type:numeric(14,2);not null"`
	Special         float64      `gorm:"type:numeric(14,2);not null"`
	PF              float64      `gorm:"type:numeric(14,2);not null"`
	PT              float64      `gorm:"type:numeric(14,2);not null"`
	TotalEarnings   float64      `gorm:"type:numeric(14,2);not null"`
	TotalDeductions float64      `gorm:"type:numeric(14,2);not null"`
	NetSalary       float64      `gorm:"type:numeric(14,2);not null"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (PayrollRecord) TableName() string { return "payroll_records" }

// ComponentType splits payslip rows into the two columns.
type ComponentType string

const (
	ComponentEarning   ComponentType = "earning"
	ComponentDeduction ComponentType = "deduction"
)

// PayrollComponent is one payslip breakdown row. Every record carries the
// same five rows so payslip rendering stays positional.
type PayrollComponent struct {
	ID       snowflake.ID  `gorm:"primaryKey"`
	RecordID snowflake.ID  `gorm:"not null;index"`
	Name     string        `gorm:"type:text;not null"`
	Type     ComponentType `gorm:"type:text;not null"`
	Amount   float64       `gorm:"type:numeric(14,2);not null"`
	Position int           `gorm:"not null"`
}

// TableName sets the database table name.
func (PayrollComponent) TableName() string { return "payroll_components" }
