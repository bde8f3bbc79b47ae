package domain

// Rates are the fallback payroll knobs applied to a flat gross salary when an
// employee has no explicit component structure.
type Rates struct {
	BasicRatio   float64
	HRARatio     float64
	SpecialRatio float64
	PFRate       float64
	PTAmount     float64
}

// Breakdown is the computed five-component pay for one period.
type Breakdown struct {
	Basic   float64
	HRA     float64
	Special float64
	PF      float64
	PT      float64
}

// TotalEarnings is basic + hra + special.
func (b Breakdown) TotalEarnings() float64 { return b.Basic + b.HRA + b.Special }

// TotalDeductions is pf + pt.
func (b Breakdown) TotalDeductions() float64 { return b.PF + b.PT }

// Net is earnings minus deductions.
func (b Breakdown) Net() float64 { return b.TotalEarnings() - b.TotalDeductions() }

// Compute derives the pay breakdown for an employee. An explicit structure
// (basic set) wins, with absent components treated as zero. Otherwise the
// fallback ratios apply to the flat salary. An employee with neither yields
// an all-zero breakdown, not an error.
func Compute(e *Employee, rates Rates) Breakdown {
	if e.Basic != nil {
		return Breakdown{
			Basic:   *e.Basic,
			HRA:     deref(e.HRA),
			Special: deref(e.Special),
			PF:      deref(e.PF),
			PT:      deref(e.PT),
		}
	}
	if e.Salary != nil {
		basic := *e.Salary * rates.BasicRatio
		return Breakdown{
			Basic:   basic,
			HRA:     *e.Salary * rates.HRARatio,
			Special: *e.Salary * rates.SpecialRatio,
			PF:      basic * rates.PFRate,
			PT:      rates.PTAmount,
		}
	}
	return Breakdown{}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// Component names in payslip order.
const (
	ComponentBasicSalary      = "Basic Salary"
	ComponentHRA              = "HRA"
	ComponentSpecialAllowance = "Special Allowance"
	ComponentProvidentFund    = "Provident Fund"
	ComponentProfessionalTax  = "Professional Tax"
)

// Components expands a breakdown into the five fixed payslip rows.
func (b Breakdown) Components() []PayrollComponent {
	return []PayrollComponent{
		{Name: ComponentBasicSalary, Type: ComponentEarning, Amount: b.Basic, Position: 1},
		{Name: ComponentHRA, Type: ComponentEarning, Amount: b.HRA, Position: 2},
		{Name: ComponentSpecialAllowance, Type: ComponentEarning, Amount: b.Special, Position: 3},
		{Name: ComponentProvidentFund, Type: ComponentDeduction, Amount: b.PF, Position: 4},
		{Name: ComponentProfessionalTax, Type: ComponentDeduction, Amount: b.PT, Position: 5},
	}
}
