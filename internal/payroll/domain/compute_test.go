package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testRates = Rates{
	BasicRatio:   0.5,
	HRARatio:     0.4,
	SpecialRatio: 0.1,
	PFRate:       0.12,
	PTAmount:     200,
}

func f64(v float64) *float64 { return &v }

func TestCompute_FallbackRatiosOnFlatSalary(t *testing.T) {
	emp := &Employee{Salary: f64(20000)}

	b := Compute(emp, testRates)
	assert.InDelta(t, 10000.0, b.Basic, 1e-9)
	assert.InDelta(t, 8000.0, b.HRA, 1e-9)
	assert.InDelta(t, 2000.0, b.Special, 1e-9)
	assert.InDelta(t, 1200.0, b.PF, 1e-9)
	assert.InDelta(t, 200.0, b.PT, 1e-9)
	assert.InDelta(t, 20000.0, b.TotalEarnings(), 1e-9)
	assert.InDelta(t, 1400.0, b.TotalDeductions(), 1e-9)
	assert.InDelta(t, 18600.0, b.Net(), 1e-9)
}

func TestCompute_StructureWinsOverSalary(t *testing.T) {
	emp := &Employee{
		Salary:  f64(99999),
		Basic:   f64(15000),
		HRA:     f64(6000),
		Special: f64(3000),
		PF:      f64(1800),
		PT:      f64(200),
	}

	b := Compute(emp, testRates)
	assert.InDelta(t, 15000.0, b.Basic, 1e-9)
	assert.InDelta(t, 6000.0, b.HRA, 1e-9)
	assert.InDelta(t, 22000.0, b.Net(), 1e-9)
}

func TestCompute_StructureAbsentComponentsAreZero(t *testing.T) {
	emp := &Employee{Basic: f64(12000)}

	b := Compute(emp, testRates)
	assert.InDelta(t, 12000.0, b.Basic, 1e-9)
	assert.InDelta(t, 0.0, b.HRA, 1e-9)
	assert.InDelta(t, 0.0, b.PF, 1e-9)
	assert.InDelta(t, 12000.0, b.Net(), 1e-9)
}

func TestCompute_NoSalaryNoStructureIsAllZero(t *testing.T) {
	b := Compute(&Employee{}, testRates)
	assert.InDelta(t, 0.0, b.TotalEarnings(), 1e-9)
	assert.InDelta(t, 0.0, b.TotalDeductions(), 1e-9)
	assert.InDelta(t, 0.0, b.Net(), 1e-9)
}

func TestComponents_FixedRowsInOrder(t *testing.T) {
	b := Breakdown{Basic: 10000, HRA: 8000, Special: 2000, PF: 1200, PT: 200}

	rows := b.Components()
	assert.Len(t, rows, 5)
	assert.Equal(t, ComponentBasicSalary, rows[0].Name)
	assert.Equal(t, ComponentEarning, rows[0].Type)
	assert.Equal(t, ComponentProfessionalTax, rows[4].Name)
	assert.Equal(t, ComponentDeduction, rows[4].Type)
}
