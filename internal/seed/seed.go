// Package seed bootstraps a fresh database with a default tenant and its
// chart of accounts so the service is usable out of the box.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	tenantdomain "github.com/bharatbooks/bharatbooks/internal/tenant/domain"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
)

const (
	defaultTenantName = "Main"
	defaultStateCode  = "27"
)

type chartEntry struct {
	code string
	name string
	kind voucherdomain.AccountKind
}

// defaultChart is the chart of accounts every tenant starts with. Invoice
// posting and return summaries expect these codes to exist.
var defaultChart = []chartEntry{
	{voucherdomain.AccountCodeCash, "Cash", voucherdomain.AccountKindCash},
	{voucherdomain.AccountCodeBank, "Bank", voucherdomain.AccountKindBank},
	{voucherdomain.AccountCodeSales, "Sales", voucherdomain.AccountKindSales},
	{voucherdomain.AccountCodePurchases, "Purchases", voucherdomain.AccountKindPurchase},
	{voucherdomain.AccountCodeSundryDebtors, "Sundry Debtors", voucherdomain.AccountKindDebtor},
	{voucherdomain.AccountCodeSundryCreditors, "Sundry Creditors", voucherdomain.AccountKindCreditor},
	{voucherdomain.AccountCodeCGSTOutput, "CGST Output", voucherdomain.AccountKindTax},
	{voucherdomain.AccountCodeSGSTOutput, "SGST Output", voucherdomain.AccountKindTax},
	{voucherdomain.AccountCodeIGSTOutput, "IGST Output", voucherdomain.AccountKindTax},
	{voucherdomain.AccountCodeCGSTInput, "CGST Input", voucherdomain.AccountKindTax},
	{voucherdomain.AccountCodeSGSTInput, "SGST Input", voucherdomain.AccountKindTax},
	{voucherdomain.AccountCodeIGSTInput, "IGST Input", voucherdomain.AccountKindTax},
	{voucherdomain.AccountCodeSalary, "Salary", voucherdomain.AccountKindExpense},
	{voucherdomain.AccountCodeRoundOff, "Round Off", voucherdomain.AccountKindOther},
}

// EnsureDefaultTenant seeds the default tenant with a generated id.
func EnsureDefaultTenant(db *gorm.DB) error {
	return ensure(db, 0)
}

// EnsureDefaultTenantWithID seeds the default tenant under a fixed id, used
// when DEFAULT_TENANT pins the tenant for header-less deployments.
func EnsureDefaultTenantWithID(db *gorm.DB, id int64) error {
	return ensure(db, snowflake.ID(id))
}

func ensure(db *gorm.DB, id snowflake.ID) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tenantID, err := ensureTenantTx(ctx, tx, node, id)
		if err != nil {
			return err
		}
		return EnsureChartOfAccounts(ctx, tx, node, tenantID)
	})
}

func ensureTenantTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, id snowflake.ID) (snowflake.ID, error) {
	var existing tenantdomain.Tenant

	stmt := tx.WithContext(ctx)
	if id != 0 {
		stmt = stmt.Where("id = ?", id)
	} else {
		stmt = stmt.Where("name = ?", defaultTenantName)
	}
	err := stmt.First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	tenantID := id
	if tenantID == 0 {
		tenantID = node.Generate()
	}
	now := time.Now().UTC()
	record := tenantdomain.Tenant{
		ID:        tenantID,
		Name:      defaultTenantName,
		StateCode: defaultStateCode,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(&record).Error; err != nil {
		return 0, err
	}
	return tenantID, nil
}

// EnsureChartOfAccounts inserts any missing default accounts for a tenant.
// Reruns are no-ops via the (tenant_id, code) unique index; the conflict
// clause is rendered per dialect by gorm.
func EnsureChartOfAccounts(ctx context.Context, tx *gorm.DB, node *snowflake.Node, tenantID snowflake.ID) error {
	now := time.Now().UTC()
	accounts := make([]voucherdomain.LedgerAccount, 0, len(defaultChart))
	for _, entry := range defaultChart {
		accounts = append(accounts, voucherdomain.LedgerAccount{
			ID:        node.Generate(),
			TenantID:  tenantID,
			Code:      entry.code,
			Name:      entry.name,
			Kind:      entry.kind,
			CreatedAt: now,
		})
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "code"}},
		DoNothing: true,
	}).Create(&accounts).Error
}
