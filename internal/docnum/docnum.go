// Package docnum formats and allocates tenant-scoped document numbers for
// invoices and vouchers.
package docnum

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

const (
	DefaultInvoiceTemplate = "INV-{YYYY}{MM}-{SEQ4}"
)

// Templates for voucher numbers by voucher type.
var VoucherTemplates = map[string]string{
	"payment":  "PAY-{SEQ4}",
	"receipt":  "RCT-{SEQ4}",
	"journal":  "JRN-{SEQ4}",
	"purchase": "PUR-{SEQ4}",
	"sales":    "SAL-{SEQ4}",
	"contra":   "CON-{SEQ4}",
}

// Format renders a human-readable document number from a template, the
// document date, and a monotonic sequence. It is deterministic and touches
// no state; allocation happens in NextSeq.
func Format(template string, date time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("document number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid document sequence: %d", seq)
	}

	out := template

	// Date tokens
	out = strings.ReplaceAll(out, "{YYYY}", date.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", date.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", date.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", date.Format("02"))

	// Simple sequence
	out = strings.ReplaceAll(out, "{SEQ}", strconv.FormatInt(seq, 10))

	// Padded sequence
	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		if len(match) != 2 {
			return m
		}

		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}

		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.Contains(out, "{") || strings.Contains(out, "}") {
		return "", fmt.Errorf("unresolved token in document number format: %s", out)
	}

	return out, nil
}
