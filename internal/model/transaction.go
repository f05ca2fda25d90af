package model

import "github.com/shopspring/decimal"

// CsvFormat identifies the bank-export dialect of an import file.
// Decided once per file, never per row.
type CsvFormat string

const (
	FormatWise    CsvFormat = "wise"
	FormatRevolut CsvFormat = "revolut"
	FormatGeneric CsvFormat = "generic"
)

// Valid reports whether f is one of the known dialects.
func (f CsvFormat) Valid() bool {
	switch f {
	case FormatWise, FormatRevolut, FormatGeneric:
		return true
	}
	return false
}

// ParsedTransaction is the canonical, dialect-independent record produced
// by the import pipeline. Amount is a whole-unit integer (negative = money
// out), Date a YYYY-MM-DD string.
type ParsedTransaction struct {
	Date        string
	Description string
	Amount      int64

	// Optional metadata, carried only when the source dialect provides it.
	// Zero decimal / empty string means absent.
	OriginalAmount   decimal.Decimal
	OriginalCurrency string
	ExchangeRate     decimal.Decimal
	Fees             decimal.Decimal
	PayeeName        string
	Reference        string
}
