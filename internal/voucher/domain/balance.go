package domain

import "math"

const balanceTolerance = 1e-9

// ValidateBalanced checks that a voucher has at least two entries and that
// its debits equal its credits within floating tolerance.
func ValidateBalanced(entries []VoucherEntry) error {
	if len(entries) < 2 {
		return ErrTooFewEntries
	}

	var debit, credit float64
	for _, e := range entries {
		switch e.Direction {
		case EntryDirectionDebit:
			debit += e.Amount
		case EntryDirectionCredit:
			credit += e.Amount
		default:
			return ErrInvalidDirection
		}
	}

	if math.Abs(debit-credit) > balanceTolerance {
		return ErrUnbalancedEntries
	}
	return nil
}
