// Package gst implements the GST computation core: GSTIN parsing, supply
// classification, CGST/SGST/IGST splitting, rupee rounding and the Indian
// amount-in-words helper. Everything here is a pure function over validated
// inputs; persistence and request validation live with the callers.
package gst

import (
	"errors"
	"regexp"
)

// gstinPattern matches the 15-character GSTIN layout: 2-digit state code,
// 10-character PAN, entity-count digit, the literal Z, check character.
var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

var ErrInvalidGSTIN = errors.New("invalid_gstin")

// ValidGSTIN reports whether s is a well-formed GSTIN. There are no partial
// validity states: any length or pattern mismatch is invalid.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(s)
}

// StateCode returns the two-digit state code prefix of a valid GSTIN.
func StateCode(gstin string) (string, error) {
	if !ValidGSTIN(gstin) {
		return "", ErrInvalidGSTIN
	}
	return gstin[0:2], nil
}

// PAN returns the 10-character PAN segment of a valid GSTIN.
func PAN(gstin string) (string, error) {
	if !ValidGSTIN(gstin) {
		return "", ErrInvalidGSTIN
	}
	return gstin[2:12], nil
}

// EntityType is a coarse classification hinted by the 4th PAN character.
type EntityType string

const (
	EntityCompany          EntityType = "Company"
	EntityIndividual       EntityType = "Individual"
	EntityHUF              EntityType = "HUF"
	EntityFirm             EntityType = "Firm"
	EntityAOPBOI           EntityType = "AOP/BOI"
	EntityTrust            EntityType = "Trust"
	EntityBOI              EntityType = "BOI"
	EntityLocalAuthority   EntityType = "Local Authority"
	EntityArtificialPerson EntityType = "Artificial Juridical Person"
	EntityGovernment       EntityType = "Government"
	EntityGenericBusiness  EntityType = "Business"
)

var entityTypeByPANChar = map[byte]EntityType{
	'C': EntityCompany,
	'P': EntityIndividual,
	'H': EntityHUF,
	'F': EntityFirm,
	'A': EntityAOPBOI,
	'T': EntityTrust,
	'B': EntityBOI,
	'L': EntityLocalAuthority,
	'J': EntityArtificialPerson,
	'G': EntityGovernment,
}

// EntityTypeHint maps the 4th character of a PAN to the holder's entity type.
// Unknown characters fall back to the generic Business hint.
func EntityTypeHint(pan string) EntityType {
	if len(pan) < 4 {
		return EntityGenericBusiness
	}
	if t, ok := entityTypeByPANChar[pan[3]]; ok {
		return t
	}
	return EntityGenericBusiness
}
