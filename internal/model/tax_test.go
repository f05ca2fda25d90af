package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTaxCategory_Valid(t *testing.T) {
	for _, tc := range []TaxCategory{TaxStandard, TaxReduced, TaxNonTaxable, TaxNotApplicable, TaxExempt} {
		assert.True(t, tc.Valid(), string(tc))
	}
	assert.False(t, TaxCategory("tax_5").Valid())
	assert.False(t, TaxCategory("").Valid())
}

func TestTaxCategory_Rate(t *testing.T) {
	assert.True(t, TaxStandard.Rate().Equal(decimal.RequireFromString("0.10")))
	assert.True(t, TaxReduced.Rate().Equal(decimal.RequireFromString("0.08")))
	assert.True(t, TaxNonTaxable.Rate().IsZero())
	assert.True(t, TaxExempt.Rate().IsZero())
}

func TestCsvFormat_Valid(t *testing.T) {
	assert.True(t, FormatWise.Valid())
	assert.True(t, FormatRevolut.Valid())
	assert.True(t, FormatGeneric.Valid())
	assert.False(t, CsvFormat("monzo").Valid())
	assert.False(t, CsvFormat("").Valid())
}
