package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bharatbooks/bharatbooks/internal/gst"
	invoicedomain "github.com/bharatbooks/bharatbooks/internal/invoice/domain"
	partydomain "github.com/bharatbooks/bharatbooks/internal/party/domain"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
	"github.com/bharatbooks/bharatbooks/pkg/tenantctx"
)

type returnsFixture struct {
	svc      *Service
	db       *gorm.DB
	node     *snowflake.Node
	ctx      context.Context
	tenantID snowflake.ID
}

func setupReturnsTest(t *testing.T) *returnsFixture {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, db.AutoMigrate(
		&partydomain.Party{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceLine{},
		&voucherdomain.LedgerAccount{},
		&voucherdomain.Voucher{},
		&voucherdomain.VoucherEntry{},
	))

	node, _ := snowflake.NewNode(1)
	svc := NewService(Params{DB: db, Log: zap.NewNop()}).(*Service)

	tenantID := node.Generate()
	return &returnsFixture{
		svc:      svc,
		db:       db,
		node:     node,
		ctx:      tenantctx.WithTenantID(context.Background(), tenantID),
		tenantID: tenantID,
	}
}

func (f *returnsFixture) seedInvoice(t *testing.T, date time.Time, gstin string, subtotal, tax float64, status invoicedomain.InvoiceStatus) {
	partyID := f.node.Generate()
	assert.NoError(t, f.db.Create(&partydomain.Party{
		ID:       partyID,
		TenantID: f.tenantID,
		Name:     "Party " + partyID.String(),
		Type:     partydomain.PartyTypeCustomer,
		GSTIN:    gstin,
	}).Error)

	grand := gst.RoundRupees(subtotal + tax)
	assert.NoError(t, f.db.Create(&invoicedomain.Invoice{
		ID:            f.node.Generate(),
		TenantID:      f.tenantID,
		PartyID:       partyID,
		InvoiceNumber: "INV-" + f.node.Generate().String(),
		SeqNo:         1,
		InvoiceDate:   date,
		SupplyType:    gst.SupplyIntrastate,
		Subtotal:      subtotal,
		TotalTax:      tax,
		GrandTotal:    grand,
		RoundOff:      grand - (subtotal + tax),
		AmountInWords: gst.AmountInWords(grand),
		Status:        status,
	}).Error)
}

func (f *returnsFixture) seedPurchaseVoucher(t *testing.T, date time.Time, taxable, itc float64) {
	purchasesID := f.node.Generate()
	taxID := f.node.Generate()
	creditorID := f.node.Generate()
	for id, kind := range map[snowflake.ID]voucherdomain.AccountKind{
		purchasesID: voucherdomain.AccountKindPurchase,
		taxID:       voucherdomain.AccountKindTax,
		creditorID:  voucherdomain.AccountKindCreditor,
	} {
		assert.NoError(t, f.db.Create(&voucherdomain.LedgerAccount{
			ID:       id,
			TenantID: f.tenantID,
			Code:     "acc_" + id.String(),
			Name:     "acc",
			Kind:     kind,
		}).Error)
	}

	voucherID := f.node.Generate()
	assert.NoError(t, f.db.Create(&voucherdomain.Voucher{
		ID:            voucherID,
		TenantID:      f.tenantID,
		VoucherNumber: "PUR-" + voucherID.String(),
		SeqNo:         1,
		Type:          voucherdomain.VoucherTypePurchase,
		Date:          date,
	}).Error)

	entries := []voucherdomain.VoucherEntry{
		{ID: f.node.Generate(), VoucherID: voucherID, AccountID: purchasesID, Direction: voucherdomain.EntryDirectionDebit, Amount: taxable},
		{ID: f.node.Generate(), VoucherID: voucherID, AccountID: taxID, Direction: voucherdomain.EntryDirectionDebit, Amount: itc},
		{ID: f.node.Generate(), VoucherID: voucherID, AccountID: creditorID, Direction: voucherdomain.EntryDirectionCredit, Amount: taxable + itc},
	}
	assert.NoError(t, f.db.Create(&entries).Error)
}

func TestReturnsSummary_CreditExceedsPayable(t *testing.T) {
	f := setupReturnsTest(t)
	april := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

	f.seedInvoice(t, april, "27AAPFU0939F1ZV", 25000, 5000, invoicedomain.InvoiceStatusIssued)
	f.seedPurchaseVoucher(t, april, 38000, 7000)

	summary, err := f.svc.Summary(f.ctx, 4, 2024)
	assert.NoError(t, err)

	assert.Equal(t, "Apr 2024", summary.Period)
	assert.Equal(t, 1, summary.GSTR1.InvoiceCount)
	assert.Equal(t, 1, summary.GSTR1.B2BCount)
	assert.InDelta(t, 5000.0, summary.GSTR3B.TaxPayable, 1e-9)
	assert.InDelta(t, 7000.0, summary.GSTR3B.ITCAvailable, 1e-9)
	assert.InDelta(t, 38000.0, summary.GSTR3B.InwardTaxable, 1e-9)
	assert.InDelta(t, 0.0, summary.GSTR3B.NetLiability, 1e-9)
}

func TestReturnsSummary_PeriodBoundariesAndStatus(t *testing.T) {
	f := setupReturnsTest(t)

	f.seedInvoice(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), "", 100, 18, invoicedomain.InvoiceStatusIssued)
	f.seedInvoice(t, time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC), "27AAPFU0939F1ZV", 200, 36, invoicedomain.InvoiceStatusIssued)
	f.seedInvoice(t, time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC), "", 999, 99, invoicedomain.InvoiceStatusCancelled)
	f.seedInvoice(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), "", 500, 90, invoicedomain.InvoiceStatusIssued)
	f.seedInvoice(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), "", 500, 90, invoicedomain.InvoiceStatusIssued)

	summary, err := f.svc.Summary(f.ctx, 4, 2024)
	assert.NoError(t, err)

	assert.Equal(t, 2, summary.GSTR1.InvoiceCount)
	assert.Equal(t, 1, summary.GSTR1.B2BCount)
	assert.Equal(t, 1, summary.GSTR1.B2CCount)
	assert.InDelta(t, 300.0, summary.GSTR1.TaxableValue, 1e-9)
	assert.InDelta(t, 54.0, summary.GSTR1.TotalTax, 1e-9)
}

func TestReturnsSummary_InvalidPeriod(t *testing.T) {
	f := setupReturnsTest(t)

	_, err := f.svc.Summary(f.ctx, 13, 2024)
	assert.Error(t, err)
}

func TestExportGSTR1(t *testing.T) {
	f := setupReturnsTest(t)
	april := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

	f.seedInvoice(t, april, "27AAPFU0939F1ZV", 1000, 180, invoicedomain.InvoiceStatusIssued)
	f.seedInvoice(t, april, "", 500, 25, invoicedomain.InvoiceStatusIssued)

	file, err := f.svc.ExportGSTR1(f.ctx, 4, 2024)
	assert.NoError(t, err)
	defer file.Close()

	assert.Equal(t, "GSTR1 Apr-2024", file.GetSheetName(0))

	rows, err := file.GetRows("Invoices")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "B2B", rows[1][6])
	assert.Equal(t, "B2C", rows[2][6])
}
