package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiwake-dev/shiwake/internal/model"
)

func wiseRow() RawRow {
	return RawRow{
		"TransferWise ID": "BT-1001",
		"Date":            "15-01-2025",
		"Amount":          "-1200",
		"Currency":        "JPY",
		"Description":     "Server hosting",
	}
}

func TestValidateRow_WiseValid(t *testing.T) {
	assert.NoError(t, ValidateRow(model.FormatWise, wiseRow()))
}

func TestValidateRow_WiseEmptyDescriptionAllowed(t *testing.T) {
	row := wiseRow()
	row["Description"] = ""
	assert.NoError(t, ValidateRow(model.FormatWise, row))
}

func TestValidateRow_WiseEmptyIDAllowed(t *testing.T) {
	row := wiseRow()
	row["TransferWise ID"] = ""
	assert.NoError(t, ValidateRow(model.FormatWise, row))
}

func TestValidateRow_WiseMissingColumn(t *testing.T) {
	row := wiseRow()
	delete(row, "Currency")
	err := ValidateRow(model.FormatWise, row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"Currency"`)
}

func TestValidateRow_WiseEmptyRequired(t *testing.T) {
	row := wiseRow()
	row["Amount"] = ""
	err := ValidateRow(model.FormatWise, row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty required field")
	assert.Contains(t, err.Error(), `"Amount"`)
}

func TestValidateRow_Revolut(t *testing.T) {
	row := RawRow{
		"Date":        "2025-01-15",
		"Description": "Topup",
		"Amount":      "10000",
		"Currency":    "JPY",
	}
	assert.NoError(t, ValidateRow(model.FormatRevolut, row))

	// Balance is optional.
	row["Balance"] = "52000"
	assert.NoError(t, ValidateRow(model.FormatRevolut, row))

	row["Description"] = ""
	assert.Error(t, ValidateRow(model.FormatRevolut, row))
}

func TestValidateRow_Generic(t *testing.T) {
	row := RawRow{"date": "2025-01-10", "description": "消耗品", "amount": "-3480"}
	assert.NoError(t, ValidateRow(model.FormatGeneric, row))

	delete(row, "amount")
	err := ValidateRow(model.FormatGeneric, row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"amount"`)
}

func TestValidateRow_DoesNotParseValues(t *testing.T) {
	// Structural validation only: garbage values pass, the normalizer
	// rejects them later.
	row := RawRow{"date": "not a date", "description": "x", "amount": "abc"}
	assert.NoError(t, ValidateRow(model.FormatGeneric, row))
}
