package gst

import (
	"math"
	"strings"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// AmountInWords renders a rupee amount in words using the Indian grouping:
// Hundred, Thousand (10^3), Lakh (10^5), Crore (10^7). The amount is rounded
// to whole rupees first, matching the whole-rupee invoice grand total.
func AmountInWords(amount float64) string {
	rupees := int64(RoundRupees(math.Abs(amount)))

	var b strings.Builder
	if amount < 0 {
		b.WriteString("Minus ")
	}
	if rupees == 0 {
		b.WriteString("Zero")
	} else {
		b.WriteString(numberInWords(rupees))
	}
	b.WriteString(" Rupees Only")
	return b.String()
}

// numberInWords recurses on the Indian group boundaries, spelling the group
// quotient and then the remainder.
func numberInWords(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		return join(tensWords[n/10], numberInWords(n%10))
	case n < 1000:
		return join(onesWords[n/100]+" Hundred", numberInWords(n%100))
	case n < 100000:
		return join(numberInWords(n/1000)+" Thousand", numberInWords(n%1000))
	case n < 10000000:
		return join(numberInWords(n/100000)+" Lakh", numberInWords(n%100000))
	default:
		return join(numberInWords(n/10000000)+" Crore", numberInWords(n%10000000))
	}
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}
