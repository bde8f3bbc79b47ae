// Package domain contains the double-entry bookkeeping models: ledger
// accounts, vouchers and their posting entries.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// AccountKind is a typed classification of a ledger account. Return
// computation keys off this field, never off free-text account names, so an
// unconventionally named account can not silently misclassify.
type AccountKind string

const (
	AccountKindCash     AccountKind = "cash"
	AccountKindBank     AccountKind = "bank"
	AccountKindSales    AccountKind = "sales"
	AccountKindPurchase AccountKind = "purchase"
	AccountKindTax      AccountKind = "tax"
	AccountKindDebtor   AccountKind = "debtor"
	AccountKindCreditor AccountKind = "creditor"
	AccountKindExpense  AccountKind = "expense"
	AccountKindIncome   AccountKind = "income"
	AccountKindOther    AccountKind = "other"
)

// ValidAccountKind reports whether k is one of the known kinds.
func ValidAccountKind(k AccountKind) bool {
	switch k {
	case AccountKindCash, AccountKindBank, AccountKindSales, AccountKindPurchase,
		AccountKindTax, AccountKindDebtor, AccountKindCreditor,
		AccountKindExpense, AccountKindIncome, AccountKindOther:
		return true
	}
	return false
}

// Well-known account codes seeded into every tenant's chart of accounts.
const (
	AccountCodeCash            = "cash"
	AccountCodeBank            = "bank"
	AccountCodeSales           = "sales"
	AccountCodePurchases       = "purchases"
	AccountCodeSundryDebtors   = "sundry_debtors"
	AccountCodeSundryCreditors = "sundry_creditors"
	AccountCodeCGSTOutput      = "cgst_output"
	AccountCodeSGSTOutput      = "sgst_output"
	AccountCodeIGSTOutput      = "igst_output"
	AccountCodeCGSTInput       = "cgst_input"
	AccountCodeSGSTInput       = "sgst_input"
	AccountCodeIGSTInput       = "igst_input"
	AccountCodeSalary          = "salary"
	AccountCodeRoundOff        = "round_off"
)

// LedgerAccount is one entry in a tenant's chart of accounts.
type LedgerAccount struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	TenantID  snowflake.ID `gorm:"not null;index;uniqueIndex:ux_ledger_accounts_tenant_code,priority:1"`
	Code      string       `gorm:"type:text;not null;uniqueIndex:ux_ledger_accounts_tenant_code,priority:2"`
	Name      string       `gorm:"type:text;not null"`
	Kind      AccountKind  `gorm:"type:text;not null;index"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (LedgerAccount) TableName() string { return "ledger_accounts" }

// VoucherType classifies a bookkeeping voucher.
type VoucherType string

const (
	VoucherTypePayment  VoucherType = "payment"
	VoucherTypeReceipt  VoucherType = "receipt"
	VoucherTypeJournal  VoucherType = "journal"
	VoucherTypePurchase VoucherType = "purchase"
	VoucherTypeSales    VoucherType = "sales"
	VoucherTypeContra   VoucherType = "contra"
)

// ValidVoucherType reports whether t is one of the known voucher types.
func ValidVoucherType(t VoucherType) bool {
	switch t {
	case VoucherTypePayment, VoucherTypeReceipt, VoucherTypeJournal,
		VoucherTypePurchase, VoucherTypeSales, VoucherTypeContra:
		return true
	}
	return false
}

// EntryDirection represents debit or credit postings.
type EntryDirection string

const (
	EntryDirectionDebit  EntryDirection = "debit"
	EntryDirectionCredit EntryDirection = "credit"
)

// Voucher is the immutable header of one double-entry posting.
type Voucher struct {
	ID            snowflake.ID  `gorm:"primaryKey"`
	TenantID      snowflake.ID  `gorm:"not null;index;uniqueIndex:ux_vouchers_tenant_number,priority:1"`
	VoucherNumber string        `gorm:"type:text;not null;uniqueIndex:ux_vouchers_tenant_number,priority:2"`
	SeqNo         int64         `gorm:"not null"`
	Type          VoucherType   `gorm:"type:text;not null;index"`
	Date          time.Time     `gorm:"not null;index"`
	PartyID       *snowflake.ID `gorm:"index"`
	Narration     string        `gorm:"type:text"`
	CreatedAt     time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Voucher) TableName() string { return "vouchers" }

// VoucherEntry is one posting line of a voucher.
type VoucherEntry struct {
	ID        snowflake.ID   `gorm:"primaryKey"`
	VoucherID snowflake.ID   `gorm:"not null;index"`
	AccountID snowflake.ID   `gorm:"not null;index"`
	Direction EntryDirection `gorm:"type:text;not null"`
	Amount    float64        `gorm:"type:numeric(14,2);not null"`
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (VoucherEntry) TableName() string { return "voucher_entries" }

// DocumentSequence is a per-tenant, per-kind monotonic counter. Numbers are
// allocated by updating the row inside the same transaction that inserts the
// document, so concurrent requests can not mint duplicates.
type DocumentSequence struct {
	TenantID   snowflake.ID `gorm:"primaryKey"`
	Kind       string       `gorm:"type:text;primaryKey"`
	NextNumber int64        `gorm:"not null;default:1"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (DocumentSequence) TableName() string { return "document_sequences" }
