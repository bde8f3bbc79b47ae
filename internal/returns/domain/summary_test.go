package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
)

func TestNewPeriod(t *testing.T) {
	p, err := NewPeriod(2, 2024)
	assert.NoError(t, err)
	assert.Equal(t, "Feb 2024", p.Label())
	assert.Equal(t, "Feb-2024", p.SheetLabel())
	assert.Equal(t, 1, p.Start.Day())
	assert.Equal(t, 29, p.End.Day())

	p, err = NewPeriod(4, 2024)
	assert.NoError(t, err)
	assert.Equal(t, 30, p.End.Day())

	_, err = NewPeriod(0, 2024)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	_, err = NewPeriod(13, 2024)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestSummarizeOutward(t *testing.T) {
	invoices := []OutwardInvoice{
		{PartyGSTIN: "27AAPFU0939F1ZV", Subtotal: 1000, TotalTax: 180, GrandTotal: 1180},
		{PartyGSTIN: "27", Subtotal: 500, TotalTax: 25, GrandTotal: 525},
		{PartyGSTIN: "", Subtotal: 200, TotalTax: 10, GrandTotal: 210},
		{PartyGSTIN: "29AAPFU0939F1ZV", Subtotal: 9999, TotalTax: 999, GrandTotal: 10998, Cancelled: true},
	}

	out := SummarizeOutward(invoices)
	assert.Equal(t, 3, out.InvoiceCount)
	assert.Equal(t, 1, out.B2BCount)
	assert.Equal(t, 2, out.B2CCount)
	assert.InDelta(t, 1700.0, out.TaxableValue, 1e-9)
	assert.InDelta(t, 215.0, out.TotalTax, 1e-9)
	assert.InDelta(t, 1915.0, out.TotalSales, 1e-9)
}

func TestSummarizeInward(t *testing.T) {
	entries := []InwardEntry{
		{AccountKind: voucherdomain.AccountKindPurchase, Direction: voucherdomain.EntryDirectionDebit, Amount: 4000},
		{AccountKind: voucherdomain.AccountKindTax, Direction: voucherdomain.EntryDirectionDebit, Amount: 720},
		{AccountKind: voucherdomain.AccountKindCreditor, Direction: voucherdomain.EntryDirectionCredit, Amount: 4720},
		{AccountKind: voucherdomain.AccountKindTax, Direction: voucherdomain.EntryDirectionCredit, Amount: 50},
	}

	in := SummarizeInward(entries)
	assert.InDelta(t, 720.0, in.ITCAvailable, 1e-9)
	assert.InDelta(t, 4000.0, in.InwardTaxable, 1e-9)
}

func TestBuildSummary_NetLiabilityFloorsAtZero(t *testing.T) {
	period, _ := NewPeriod(4, 2024)

	s := BuildSummary(period,
		GSTR1Summary{TaxableValue: 30000, TotalTax: 5000},
		GSTR3BInward{ITCAvailable: 7000, InwardTaxable: 40000},
	)
	assert.Equal(t, "Apr 2024", s.Period)
	assert.InDelta(t, 5000.0, s.GSTR3B.TaxPayable, 1e-9)
	assert.InDelta(t, 7000.0, s.GSTR3B.ITCAvailable, 1e-9)
	assert.InDelta(t, 0.0, s.GSTR3B.NetLiability, 1e-9)

	s = BuildSummary(period,
		GSTR1Summary{TaxableValue: 30000, TotalTax: 5000},
		GSTR3BInward{ITCAvailable: 2000},
	)
	assert.InDelta(t, 3000.0, s.GSTR3B.NetLiability, 1e-9)
}
