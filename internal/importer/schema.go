package importer

import (
	"fmt"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// fieldSpec describes one required column of a dialect's row schema.
type fieldSpec struct {
	name       string
	allowEmpty bool
}

// rowSchemas holds the structural row schema per dialect. Columns not
// listed here are optional and pass through untouched.
var rowSchemas = map[model.CsvFormat][]fieldSpec{
	model.FormatWise: {
		{name: "TransferWise ID", allowEmpty: true},
		{name: "Date"},
		{name: "Amount"},
		{name: "Currency"},
		{name: "Description", allowEmpty: true},
	},
	model.FormatRevolut: {
		{name: "Date"},
		{name: "Description"},
		{name: "Amount"},
		{name: "Currency"},
	},
	model.FormatGeneric: {
		{name: "date"},
		{name: "description"},
		{name: "amount"},
	},
}

// ValidateRow checks that a row structurally matches its dialect's schema:
// every required column is present, and non-empty unless the schema allows
// empty. It does not interpret values; that is the normalizer's job.
func ValidateRow(format model.CsvFormat, row RawRow) error {
	for _, spec := range rowSchemas[format] {
		value, ok := row[spec.name]
		if !ok {
			return fmt.Errorf("missing column %q", spec.name)
		}
		if value == "" && !spec.allowEmpty {
			return fmt.Errorf("empty required field %q", spec.name)
		}
	}
	return nil
}
