package gst

import "math"

// TaxSplit carries the three GST components for one taxable amount. For any
// split, either cgst+sgst or igst is non-zero, never both, and cgst always
// equals sgst.
type TaxSplit struct {
	CGST float64 `json:"cgst"`
	SGST float64 `json:"sgst"`
	IGST float64 `json:"igst"`
}

// Total returns cgst+sgst+igst.
func (t TaxSplit) Total() float64 {
	return t.CGST + t.SGST + t.IGST
}

// SplitTax computes the GST components for a taxable amount at the given
// percentage rate. Intrastate supplies split the tax evenly between CGST and
// SGST; interstate supplies put the full tax on IGST.
//
// No rounding happens here. Line taxes are summed first and rounded once at
// the invoice grand total, so rounding error never compounds across lines.
func SplitTax(amount, ratePercent float64, supply SupplyType) TaxSplit {
	totalTax := amount * ratePercent / 100

	if supply == SupplyIntrastate {
		half := totalTax / 2
		return TaxSplit{CGST: half, SGST: half}
	}
	return TaxSplit{IGST: totalTax}
}

// RoundRupees rounds half up to the nearest whole rupee. Invoice grand
// totals are whole-rupee by design; the signed remainder is carried as the
// invoice round-off.
func RoundRupees(x float64) float64 {
	return math.Floor(x + 0.5)
}
