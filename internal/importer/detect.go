package importer

import (
	"strings"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// revolutSignature is the column set a Revolut export always carries.
var revolutSignature = []string{"date", "description", "amount", "currency", "balance"}

// DetectFormat classifies a CSV file by its header row. Detection is exact:
// a "TransferWise ID" column means Wise, the full Revolut column set means
// Revolut, anything else falls back to generic. Header order and case are
// irrelevant; there is no fuzzy matching.
func DetectFormat(headers []string) model.CsvFormat {
	normalized := make(map[string]bool, len(headers))
	for _, h := range headers {
		normalized[strings.ToLower(strings.TrimSpace(h))] = true
	}

	if normalized["transferwise id"] {
		return model.FormatWise
	}

	revolut := true
	for _, col := range revolutSignature {
		if !normalized[col] {
			revolut = false
			break
		}
	}
	if revolut {
		return model.FormatRevolut
	}

	return model.FormatGeneric
}
