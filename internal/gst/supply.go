package gst

// SupplyType classifies a transaction by whether buyer and seller share a
// state. It is derived once at invoice creation and stored with the invoice;
// later changes to a party's state do not reclassify old invoices.
type SupplyType string

const (
	SupplyIntrastate SupplyType = "intrastate"
	SupplyInterstate SupplyType = "interstate"
)

// Classify returns Intrastate iff the two state codes are exactly equal.
// State codes are compared as stored; callers validate GSTINs beforehand.
// Two empty codes therefore classify as Intrastate.
func Classify(sellerStateCode, buyerStateCode string) SupplyType {
	if sellerStateCode == buyerStateCode {
		return SupplyIntrastate
	}
	return SupplyInterstate
}
