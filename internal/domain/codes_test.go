package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidFundsType(t *testing.T) {
	for _, code := range []string{"", "0", "1", "2", "S", "V", "D", "Z"} {
		assert.True(t, ValidFundsType(code), "code %q", code)
	}
	for _, code := range []string{"3", "X", "s", "00"} {
		assert.False(t, ValidFundsType(code), "code %q", code)
	}
}

func TestIsCreditCode(t *testing.T) {
	assert.True(t, IsCreditCode("100"))
	assert.True(t, IsCreditCode("195"))
	assert.True(t, IsCreditCode("399"))
	assert.False(t, IsCreditCode("099"))
	assert.False(t, IsCreditCode("400"))
	assert.False(t, IsCreditCode("575"))
	assert.False(t, IsCreditCode("not-a-code"))
}

func TestTypeCodeLabel(t *testing.T) {
	assert.Equal(t, "WIRE TRANSFER CREDIT", TypeCodeLabel("195"))
	assert.Equal(t, "ACH DEBIT", TypeCodeLabel("469"))
	// codes outside the table fall back to the credit/debit range
	assert.Equal(t, "Credit (208)", TypeCodeLabel("208"))
	assert.Equal(t, "Debit (555)", TypeCodeLabel("555"))
}
