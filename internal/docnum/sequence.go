package docnum

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Sequence kinds known to the allocator.
const (
	KindInvoice = "invoice"
	KindVoucher = "voucher"
	KindPayroll = "payroll"
)

// NextSeq allocates the next number for (tenant, kind). It MUST be called
// inside the transaction that inserts the numbered document: the row update
// holds a lock until commit, so two concurrent requests can not mint the
// same number.
func NextSeq(ctx context.Context, tx *gorm.DB, tenantID snowflake.ID, kind string) (int64, error) {
	now := time.Now().UTC()

	result := tx.WithContext(ctx).Exec(
		`UPDATE document_sequences
		 SET next_number = next_number + 1, updated_at = ?
		 WHERE tenant_id = ? AND kind = ?`,
		now, tenantID, kind,
	)
	if result.Error != nil {
		return 0, result.Error
	}

	if result.RowsAffected == 0 {
		// First document of this kind for the tenant. A concurrent first
		// insert loses on the primary key and fails the transaction.
		if err := tx.WithContext(ctx).Exec(
			`INSERT INTO document_sequences (tenant_id, kind, next_number, updated_at)
			 VALUES (?, ?, 2, ?)`,
			tenantID, kind, now,
		).Error; err != nil {
			return 0, err
		}
		return 1, nil
	}

	var next int64
	if err := tx.WithContext(ctx).Raw(
		`SELECT next_number - 1 FROM document_sequences WHERE tenant_id = ? AND kind = ?`,
		tenantID, kind,
	).Scan(&next).Error; err != nil {
		return 0, err
	}
	return next, nil
}
