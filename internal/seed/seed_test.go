package seed

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	tenantdomain "github.com/bharatbooks/bharatbooks/internal/tenant/domain"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
)

func setupSeedTest(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	assert.NoError(t, err)

	assert.NoError(t, db.AutoMigrate(
		&tenantdomain.Tenant{},
		&voucherdomain.LedgerAccount{},
	))
	return db
}

func TestEnsureChartOfAccountsIsIdempotent(t *testing.T) {
	db := setupSeedTest(t)
	node, _ := snowflake.NewNode(1)
	tenantID := node.Generate()
	ctx := context.Background()

	assert.NoError(t, EnsureChartOfAccounts(ctx, db, node, tenantID))
	assert.NoError(t, EnsureChartOfAccounts(ctx, db, node, tenantID))

	var count int64
	assert.NoError(t, db.Model(&voucherdomain.LedgerAccount{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error)
	assert.Equal(t, int64(len(defaultChart)), count)

	var salary voucherdomain.LedgerAccount
	assert.NoError(t, db.First(&salary,
		"tenant_id = ? AND code = ?", tenantID, voucherdomain.AccountCodeSalary).Error)
	assert.Equal(t, voucherdomain.AccountKindExpense, salary.Kind)
}

func TestEnsureDefaultTenantWithIDIsIdempotent(t *testing.T) {
	db := setupSeedTest(t)
	node, _ := snowflake.NewNode(1)
	tenantID := node.Generate()

	assert.NoError(t, EnsureDefaultTenantWithID(db, int64(tenantID)))
	assert.NoError(t, EnsureDefaultTenantWithID(db, int64(tenantID)))

	var tenants int64
	assert.NoError(t, db.Model(&tenantdomain.Tenant{}).Count(&tenants).Error)
	assert.Equal(t, int64(1), tenants)

	var accounts int64
	assert.NoError(t, db.Model(&voucherdomain.LedgerAccount{}).
		Where("tenant_id = ?", tenantID).
		Count(&accounts).Error)
	assert.Equal(t, int64(len(defaultChart)), accounts)
}
