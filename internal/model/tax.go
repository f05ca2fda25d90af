package model

import "github.com/shopspring/decimal"

// TaxCategory classifies a transaction for consumption-tax purposes.
type TaxCategory string

const (
	TaxStandard      TaxCategory = "tax_10"         // taxable at 10%
	TaxReduced       TaxCategory = "tax_8"          // reduced rate (food etc.)
	TaxNonTaxable    TaxCategory = "non_taxable"    // non-taxable supply
	TaxNotApplicable TaxCategory = "not_applicable" // outside the scope of tax
	TaxExempt        TaxCategory = "tax_exempt"     // export exemption
)

// Valid reports whether t is a known tax category.
func (t TaxCategory) Valid() bool {
	switch t {
	case TaxStandard, TaxReduced, TaxNonTaxable, TaxNotApplicable, TaxExempt:
		return true
	}
	return false
}

// Rate returns the tax rate for the category (0.10, 0.08, or zero).
func (t TaxCategory) Rate() decimal.Decimal {
	switch t {
	case TaxStandard:
		return decimal.New(10, -2)
	case TaxReduced:
		return decimal.New(8, -2)
	default:
		return decimal.Zero
	}
}
