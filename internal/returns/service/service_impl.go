package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/xuri/excelize/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	invoicedomain "github.com/bharatbooks/bharatbooks/internal/invoice/domain"
	returnsdomain "github.com/bharatbooks/bharatbooks/internal/returns/domain"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
	"github.com/bharatbooks/bharatbooks/pkg/tenantctx"
)

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(p Params) returnsdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("returns.service"),
	}
}

func (s *Service) Summary(ctx context.Context, month, year int) (*returnsdomain.ReturnSummary, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, returnsdomain.ErrInvalidTenant
	}

	period, err := returnsdomain.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}

	outward, err := s.outwardInvoices(ctx, tenantID, period)
	if err != nil {
		return nil, err
	}
	inward, err := s.inwardEntries(ctx, tenantID, period)
	if err != nil {
		return nil, err
	}

	summary := returnsdomain.BuildSummary(period,
		returnsdomain.SummarizeOutward(outward),
		returnsdomain.SummarizeInward(inward),
	)
	return &summary, nil
}

// ExportGSTR1 renders the outward return as a workbook: a summary sheet plus
// one row per issued invoice.
func (s *Service) ExportGSTR1(ctx context.Context, month, year int) (*excelize.File, error) {
	tenantID, ok := tenantctx.TenantIDFromContext(ctx)
	if !ok || tenantID == 0 {
		return nil, returnsdomain.ErrInvalidTenant
	}

	period, err := returnsdomain.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}

	outward, err := s.outwardInvoices(ctx, tenantID, period)
	if err != nil {
		return nil, err
	}
	gstr1 := returnsdomain.SummarizeOutward(outward)

	f := excelize.NewFile()
	summarySheet := "GSTR1 " + period.SheetLabel()
	f.SetSheetName(f.GetSheetName(0), summarySheet)

	summaryRows := [][]interface{}{
		{"Period", period.SheetLabel()},
		{"Invoices", gstr1.InvoiceCount},
		{"B2B", gstr1.B2BCount},
		{"B2C", gstr1.B2CCount},
		{"Taxable Value", gstr1.TaxableValue},
		{"Total Tax", gstr1.TotalTax},
		{"Total Sales", gstr1.TotalSales},
	}
	for i, row := range summaryRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	invoiceSheet := "Invoices"
	if _, err := f.NewSheet(invoiceSheet); err != nil {
		return nil, err
	}
	header := []interface{}{"Invoice No", "Party", "GSTIN", "Taxable Value", "Tax", "Invoice Value", "Category"}
	if err := f.SetSheetRow(invoiceSheet, "A1", &header); err != nil {
		return nil, err
	}
	rowNo := 2
	for _, inv := range outward {
		if inv.Cancelled {
			continue
		}
		category := "B2C"
		if len(inv.PartyGSTIN) > 2 {
			category = "B2B"
		}
		row := []interface{}{
			inv.InvoiceNumber, inv.PartyName, inv.PartyGSTIN,
			inv.Subtotal, inv.TotalTax, inv.GrandTotal, category,
		}
		if err := f.SetSheetRow(invoiceSheet, fmt.Sprintf("A%d", rowNo), &row); err != nil {
			return nil, err
		}
		rowNo++
	}

	s.log.Info("gstr1 exported",
		zap.String("period", period.Label()),
		zap.Int("invoices", gstr1.InvoiceCount),
	)
	return f, nil
}

type outwardRow struct {
	InvoiceNumber string
	PartyName     string
	PartyGSTIN    string
	Subtotal      float64
	TotalTax      float64
	GrandTotal    float64
	Status        invoicedomain.InvoiceStatus
}

func (s *Service) outwardInvoices(ctx context.Context, tenantID snowflake.ID, period returnsdomain.Period) ([]returnsdomain.OutwardInvoice, error) {
	var rows []outwardRow
	err := s.db.WithContext(ctx).
		Table("invoices").
		Select(`invoices.invoice_number,
			parties.name AS party_name,
			parties.gstin AS party_gstin,
			invoices.subtotal,
			invoices.total_tax,
			invoices.grand_total,
			invoices.status`).
		Joins("LEFT JOIN parties ON parties.id = invoices.party_id").
		Where("invoices.tenant_id = ? AND invoices.invoice_date BETWEEN ? AND ?",
			tenantID, period.Start, period.End).
		Order("invoices.seq_no ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]returnsdomain.OutwardInvoice, 0, len(rows))
	for _, r := range rows {
		out = append(out, returnsdomain.OutwardInvoice{
			InvoiceNumber: r.InvoiceNumber,
			PartyName:     r.PartyName,
			PartyGSTIN:    r.PartyGSTIN,
			Subtotal:      r.Subtotal,
			TotalTax:      r.TotalTax,
			GrandTotal:    r.GrandTotal,
			Cancelled:     r.Status == invoicedomain.InvoiceStatusCancelled,
		})
	}
	return out, nil
}

type inwardRow struct {
	Kind      voucherdomain.AccountKind
	Direction voucherdomain.EntryDirection
	Amount    float64
}

func (s *Service) inwardEntries(ctx context.Context, tenantID snowflake.ID, period returnsdomain.Period) ([]returnsdomain.InwardEntry, error) {
	var rows []inwardRow
	err := s.db.WithContext(ctx).
		Table("voucher_entries").
		Select(`ledger_accounts.kind,
			voucher_entries.direction,
			voucher_entries.amount`).
		Joins("JOIN vouchers ON vouchers.id = voucher_entries.voucher_id").
		Joins("JOIN ledger_accounts ON ledger_accounts.id = voucher_entries.account_id").
		Where("vouchers.tenant_id = ? AND vouchers.type = ? AND vouchers.date BETWEEN ? AND ?",
			tenantID, voucherdomain.VoucherTypePurchase, period.Start, period.End).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]returnsdomain.InwardEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, returnsdomain.InwardEntry{
			AccountKind: r.Kind,
			Direction:   r.Direction,
			Amount:      r.Amount,
		})
	}
	return entries, nil
}
