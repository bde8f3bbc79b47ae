package migration

import (
	"gorm.io/gorm"

	invoicedomain "github.com/bharatbooks/bharatbooks/internal/invoice/domain"
	itemdomain "github.com/bharatbooks/bharatbooks/internal/item/domain"
	partydomain "github.com/bharatbooks/bharatbooks/internal/party/domain"
	payrolldomain "github.com/bharatbooks/bharatbooks/internal/payroll/domain"
	tenantdomain "github.com/bharatbooks/bharatbooks/internal/tenant/domain"
	voucherdomain "github.com/bharatbooks/bharatbooks/internal/voucher/domain"
)

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tenantdomain.Tenant{},
		&partydomain.Party{},
		&itemdomain.Item{},
		&voucherdomain.LedgerAccount{},
		&voucherdomain.Voucher{},
		&voucherdomain.VoucherEntry{},
		&voucherdomain.DocumentSequence{},
		&invoicedomain.Invoice{},
		&invoicedomain.InvoiceLine{},
		&payrolldomain.Employee{},
		&payrolldomain.PayrollRecord{},
		&payrolldomain.PayrollComponent{},
	)
}
