package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
	"github.com/bharatbooks/bharatbooks/pkg/tenantctx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupVoucherTest(t *testing.T) (*Service, *gorm.DB, *snowflake.Node, context.Context, snowflake.ID) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, db.AutoMigrate(
		&voucherdomain.LedgerAccount{},
		&voucherdomain.Voucher{},
		&voucherdomain.VoucherEntry{},
		&voucherdomain.DocumentSequence{},
	))

	node, _ := snowflake.NewNode(1)
	svc := NewService(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
	}).(*Service)

	tenantID := node.Generate()
	ctx := tenantctx.WithTenantID(context.Background(), tenantID)
	return svc, db, node, ctx, tenantID
}

func seedAccount(t *testing.T, db *gorm.DB, node *snowflake.Node, tenantID snowflake.ID, code string, kind voucherdomain.AccountKind) snowflake.ID {
	id := node.Generate()
	assert.NoError(t, db.Create(&voucherdomain.LedgerAccount{
		ID:       id,
		TenantID: tenantID,
		Code:     code,
		Name:     code,
		Kind:     kind,
	}).Error)
	return id
}

func TestCreateVoucher_BalancedPosting(t *testing.T) {
	svc, db, node, ctx, tenantID := setupVoucherTest(t)

	cashID := seedAccount(t, db, node, tenantID, voucherdomain.AccountCodeCash, voucherdomain.AccountKindCash)
	salaryID := seedAccount(t, db, node, tenantID, voucherdomain.AccountCodeSalary, voucherdomain.AccountKindExpense)

	resp, err := svc.CreateVoucher(ctx, voucherdomain.CreateVoucherRequest{
		Type:      voucherdomain.VoucherTypePayment,
		Date:      time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
		Narration: "April salaries",
		Entries: []voucherdomain.EntryRequest{
			{AccountID: salaryID.String(), Direction: voucherdomain.EntryDirectionDebit, Amount: 18600},
			{AccountID: cashID.String(), Direction: voucherdomain.EntryDirectionCredit, Amount: 18600},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "PAY-0001", resp.VoucherNumber)
	assert.Len(t, resp.Entries, 2)
	assert.Equal(t, voucherdomain.AccountKindExpense, resp.Entries[0].AccountKind)

	// Second voucher of the same kind gets the next number.
	resp2, err := svc.CreateVoucher(ctx, voucherdomain.CreateVoucherRequest{
		Type: voucherdomain.VoucherTypePayment,
		Date: time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC),
		Entries: []voucherdomain.EntryRequest{
			{AccountID: salaryID.String(), Direction: voucherdomain.EntryDirectionDebit, Amount: 100},
			{AccountID: cashID.String(), Direction: voucherdomain.EntryDirectionCredit, Amount: 100},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "PAY-0002", resp2.VoucherNumber)
}

func TestCreateVoucher_RejectsUnbalanced(t *testing.T) {
	svc, db, node, ctx, tenantID := setupVoucherTest(t)

	cashID := seedAccount(t, db, node, tenantID, voucherdomain.AccountCodeCash, voucherdomain.AccountKindCash)
	salesID := seedAccount(t, db, node, tenantID, voucherdomain.AccountCodeSales, voucherdomain.AccountKindSales)

	_, err := svc.CreateVoucher(ctx, voucherdomain.CreateVoucherRequest{
		Type: voucherdomain.VoucherTypeReceipt,
		Date: time.Now().UTC(),
		Entries: []voucherdomain.EntryRequest{
			{AccountID: cashID.String(), Direction: voucherdomain.EntryDirectionDebit, Amount: 100},
			{AccountID: salesID.String(), Direction: voucherdomain.EntryDirectionCredit, Amount: 99},
		},
	})
	assert.ErrorIs(t, err, voucherdomain.ErrUnbalancedEntries)

	_, err = svc.CreateVoucher(ctx, voucherdomain.CreateVoucherRequest{
		Type: voucherdomain.VoucherTypeReceipt,
		Date: time.Now().UTC(),
		Entries: []voucherdomain.EntryRequest{
			{AccountID: cashID.String(), Direction: voucherdomain.EntryDirectionDebit, Amount: 100},
		},
	})
	assert.ErrorIs(t, err, voucherdomain.ErrTooFewEntries)
}

func TestCreateVoucher_RejectsForeignAccount(t *testing.T) {
	svc, db, node, ctx, tenantID := setupVoucherTest(t)

	cashID := seedAccount(t, db, node, tenantID, voucherdomain.AccountCodeCash, voucherdomain.AccountKindCash)

	otherTenant := node.Generate()
	foreignID := seedAccount(t, db, node, otherTenant, voucherdomain.AccountCodeSales, voucherdomain.AccountKindSales)

	_, err := svc.CreateVoucher(ctx, voucherdomain.CreateVoucherRequest{
		Type: voucherdomain.VoucherTypeReceipt,
		Date: time.Now().UTC(),
		Entries: []voucherdomain.EntryRequest{
			{AccountID: cashID.String(), Direction: voucherdomain.EntryDirectionDebit, Amount: 50},
			{AccountID: foreignID.String(), Direction: voucherdomain.EntryDirectionCredit, Amount: 50},
		},
	})
	assert.ErrorIs(t, err, voucherdomain.ErrInvalidAccount)
}

func TestCreateVoucher_RequiresTenant(t *testing.T) {
	svc, _, _, _, _ := setupVoucherTest(t)

	_, err := svc.CreateVoucher(context.Background(), voucherdomain.CreateVoucherRequest{
		Type: voucherdomain.VoucherTypeJournal,
		Date: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, voucherdomain.ErrInvalidTenant)
}

func TestListVouchers_FilterByTypeAndDate(t *testing.T) {
	svc, db, node, ctx, tenantID := setupVoucherTest(t)

	cashID := seedAccount(t, db, node, tenantID, voucherdomain.AccountCodeCash, voucherdomain.AccountKindCash)
	salesID := seedAccount(t, db, node, tenantID, voucherdomain.AccountCodeSales, voucherdomain.AccountKindSales)

	mk := func(vt voucherdomain.VoucherType, date time.Time) {
		_, err := svc.CreateVoucher(ctx, voucherdomain.CreateVoucherRequest{
			Type: vt,
			Date: date,
			Entries: []voucherdomain.EntryRequest{
				{AccountID: cashID.String(), Direction: voucherdomain.EntryDirectionDebit, Amount: 10},
				{AccountID: salesID.String(), Direction: voucherdomain.EntryDirectionCredit, Amount: 10},
			},
		})
		assert.NoError(t, err)
	}

	mk(voucherdomain.VoucherTypeReceipt, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	mk(voucherdomain.VoucherTypeReceipt, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	mk(voucherdomain.VoucherTypeJournal, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))

	all, err := svc.List(ctx, voucherdomain.ListRequest{})
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	receipts, err := svc.List(ctx, voucherdomain.ListRequest{Type: voucherdomain.VoucherTypeReceipt})
	assert.NoError(t, err)
	assert.Len(t, receipts, 2)

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	jan, err := svc.List(ctx, voucherdomain.ListRequest{From: &from, To: &to})
	assert.NoError(t, err)
	assert.Len(t, jan, 2)
}

func TestGetVoucherByID_ScopedToTenant(t *testing.T) {
	svc, db, node, ctx, tenantID := setupVoucherTest(t)

	cashID := seedAccount(t, db, node, tenantID, voucherdomain.AccountCodeCash, voucherdomain.AccountKindCash)
	salesID := seedAccount(t, db, node, tenantID, voucherdomain.AccountCodeSales, voucherdomain.AccountKindSales)

	created, err := svc.CreateVoucher(ctx, voucherdomain.CreateVoucherRequest{
		Type: voucherdomain.VoucherTypeSales,
		Date: time.Now().UTC(),
		Entries: []voucherdomain.EntryRequest{
			{AccountID: cashID.String(), Direction: voucherdomain.EntryDirectionDebit, Amount: 200},
			{AccountID: salesID.String(), Direction: voucherdomain.EntryDirectionCredit, Amount: 200},
		},
	})
	assert.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.VoucherNumber, got.VoucherNumber)
	assert.Len(t, got.Entries, 2)

	otherCtx := tenantctx.WithTenantID(context.Background(), node.Generate())
	_, err = svc.GetByID(otherCtx, created.ID)
	assert.ErrorIs(t, err, voucherdomain.ErrNotFound)
}
