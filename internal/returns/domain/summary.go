package domain

import (
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
)

// OutwardInvoice is the slice of an issued invoice the GSTR-1 summary needs.
type OutwardInvoice struct {
	InvoiceNumber string
	PartyName     string
	PartyGSTIN    string
	Subtotal      float64
	TotalTax      float64
	GrandTotal    float64
	Cancelled     bool
}

// GSTR1Summary aggregates outward supplies for one period.
type GSTR1Summary struct {
	TotalSales   float64 `json:"total_sales"`
	TaxableValue float64 `json:"taxable_value"`
	TotalTax     float64 `json:"total_tax"`
	B2BCount     int     `json:"b2b_count"`
	B2CCount     int     `json:"b2c_count"`
	InvoiceCount int     `json:"invoice_count"`
}

// SummarizeOutward folds issued invoices into the GSTR-1 figures. A
// counterparty GSTIN longer than a bare state code marks the invoice B2B.
// Cancelled invoices are excluded.
func SummarizeOutward(invoices []OutwardInvoice) GSTR1Summary {
	var out GSTR1Summary
	for _, inv := range invoices {
		if inv.Cancelled {
			continue
		}
		out.InvoiceCount++
		out.TotalSales += inv.GrandTotal
		out.TaxableValue += inv.Subtotal
		out.TotalTax += inv.TotalTax
		if len(inv.PartyGSTIN) > 2 {
			out.B2BCount++
		} else {
			out.B2CCount++
		}
	}
	return out
}

// InwardEntry is one debit posting from a purchase voucher, carried with the
// typed kind of the account it hit.
type InwardEntry struct {
	AccountKind voucherdomain.AccountKind
	Direction   voucherdomain.EntryDirection
	Amount      float64
}

// GSTR3BInward aggregates inward supplies for one period.
type GSTR3BInward struct {
	ITCAvailable  float64 `json:"itc_available"`
	InwardTaxable float64 `json:"inward_taxable"`
}

// SummarizeInward folds purchase-voucher debit entries into the inward
// figures: tax accounts accrue input tax credit, purchase accounts accrue the
// inward taxable value. Classification keys off the account kind.
func SummarizeInward(entries []InwardEntry) GSTR3BInward {
	var in GSTR3BInward
	for _, e := range entries {
		if e.Direction != voucherdomain.EntryDirectionDebit {
			continue
		}
		switch e.AccountKind {
		case voucherdomain.AccountKindTax:
			in.ITCAvailable += e.Amount
		case voucherdomain.AccountKindPurchase:
			in.InwardTaxable += e.Amount
		}
	}
	return in
}

// GSTR3BSummary is the monthly self-assessed summary return.
type GSTR3BSummary struct {
	OutwardTaxable float64 `json:"outward_taxable"`
	TaxPayable     float64 `json:"tax_payable"`
	ITCAvailable   float64 `json:"itc_available"`
	InwardTaxable  float64 `json:"inward_taxable"`
	NetLiability   float64 `json:"net_liability"`
}

// ReturnSummary is the combined period payload.
type ReturnSummary struct {
	Period string        `json:"period"`
	GSTR1  GSTR1Summary  `json:"gstr1"`
	GSTR3B GSTR3BSummary `json:"gstr3b"`
}

// BuildSummary composes the period payload. Net liability is floored at zero;
// excess credit carries forward rather than going negative.
func BuildSummary(period Period, gstr1 GSTR1Summary, inward GSTR3BInward) ReturnSummary {
	net := gstr1.TotalTax - inward.ITCAvailable
	if net < 0 {
		net = 0
	}
	return ReturnSummary{
		Period: period.Label(),
		GSTR1:  gstr1,
		GSTR3B: GSTR3BSummary{
			OutwardTaxable: gstr1.TaxableValue,
			TaxPayable:     gstr1.TotalTax,
			ITCAvailable:   inward.ITCAvailable,
			InwardTaxable:  inward.InwardTaxable,
			NetLiability:   net,
		},
	}
}
