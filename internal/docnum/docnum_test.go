package docnum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	date := time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC)

	out, err := Format("INV-{YYYY}{MM}-{SEQ4}", date, 12)
	assert.NoError(t, err)
	assert.Equal(t, "INV-202402-0012", out)

	out, err = Format("PAY-{SEQ4}", date, 3)
	assert.NoError(t, err)
	assert.Equal(t, "PAY-0003", out)

	out, err = Format("{YY}/{DD}/{SEQ}", date, 451)
	assert.NoError(t, err)
	assert.Equal(t, "24/07/451", out)
}

func TestFormatErrors(t *testing.T) {
	date := time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC)

	_, err := Format("", date, 1)
	assert.Error(t, err)

	_, err = Format("INV-{SEQ4}", date, 0)
	assert.Error(t, err)

	_, err = Format("INV-{NOPE}", date, 1)
	assert.Error(t, err)
}
