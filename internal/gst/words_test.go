package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := map[float64]string{
		0:        "Zero Rupees Only",
		1:        "One Rupees Only",
		15:       "Fifteen Rupees Only",
		40:       "Forty Rupees Only",
		99:       "Ninety Nine Rupees Only",
		100:      "One Hundred Rupees Only",
		118:      "One Hundred Eighteen Rupees Only",
		1000:     "One Thousand Rupees Only",
		1603:     "One Thousand Six Hundred Three Rupees Only",
		99999:    "Ninety Nine Thousand Nine Hundred Ninety Nine Rupees Only",
		100000:   "One Lakh Rupees Only",
		250000:   "Two Lakh Fifty Thousand Rupees Only",
		10000000: "One Crore Rupees Only",
		12345678: "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only",
	}
	for amount, want := range cases {
		assert.Equal(t, want, AmountInWords(amount))
	}
}

func TestAmountInWordsRoundsToRupees(t *testing.T) {
	assert.Equal(t, "One Thousand Six Hundred Three Rupees Only", AmountInWords(1602.5))
	assert.Equal(t, "One Thousand Six Hundred Two Rupees Only", AmountInWords(1602.4))
}

func TestAmountInWordsNegative(t *testing.T) {
	assert.Equal(t, "Minus Five Hundred Rupees Only", AmountInWords(-500))
}
