package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidGSTIN(t *testing.T) {
	valid := []string{
		"27AAPFU0939F1ZV",
		"29AABCT1332L1ZT",
		"07AAGFF2194N1Z1",
	}
	for _, s := range valid {
		assert.True(t, ValidGSTIN(s), s)
	}

	invalid := []string{
		"",
		"27AAPFU0939F1Z",    // 14 chars
		"27AAPFU0939F1ZVX",  // 16 chars
		"27aapfu0939f1zv",   // lowercase
		"2XAAPFU0939F1ZV",   // non-digit state code
		"27AAPFU0939F0ZV",   // entity digit 0 not allowed
		"27AAPFU0939F1YV",   // missing fixed Z
		"27AAPF U939F1ZV",   // space
	}
	for _, s := range invalid {
		assert.False(t, ValidGSTIN(s), s)
	}
}

func TestStateCodeAndPAN(t *testing.T) {
	code, err := StateCode("27AAPFU0939F1ZV")
	assert.NoError(t, err)
	assert.Equal(t, "27", code)

	pan, err := PAN("27AAPFU0939F1ZV")
	assert.NoError(t, err)
	assert.Equal(t, "AAPFU0939F", pan)

	_, err = StateCode("not-a-gstin")
	assert.ErrorIs(t, err, ErrInvalidGSTIN)
	_, err = PAN("not-a-gstin")
	assert.ErrorIs(t, err, ErrInvalidGSTIN)
}

func TestEntityTypeHint(t *testing.T) {
	cases := map[string]EntityType{
		"AAACI1234F": EntityCompany,
		"AAAPI1234F": EntityIndividual,
		"AAAHI1234F": EntityHUF,
		"AAAFI1234F": EntityFirm,
		"AAAAI1234F": EntityAOPBOI,
		"AAATI1234F": EntityTrust,
		"AAABI1234F": EntityBOI,
		"AAALI1234F": EntityLocalAuthority,
		"AAAJI1234F": EntityArtificialPerson,
		"AAAGI1234F": EntityGovernment,
		"AAAXI1234F": EntityGenericBusiness, // unmapped
	}
	for pan, want := range cases {
		assert.Equal(t, want, EntityTypeHint(pan), pan)
	}

	assert.Equal(t, EntityGenericBusiness, EntityTypeHint("AB"))
}
