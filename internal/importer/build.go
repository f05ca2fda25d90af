package importer

import (
	"github.com/shiwake-dev/shiwake/internal/model"
)

// buildTransaction converts a structurally valid row into the canonical
// transaction for its dialect. A row either fully normalizes or fails;
// no partial record is ever returned.
func buildTransaction(format model.CsvFormat, row RawRow) (model.ParsedTransaction, error) {
	switch format {
	case model.FormatWise:
		return buildWise(row)
	case model.FormatRevolut:
		return buildRevolut(row)
	default:
		return buildGeneric(row)
	}
}

func buildWise(row RawRow) (model.ParsedTransaction, error) {
	amount, err := ParseAmount(row["Amount"])
	if err != nil {
		return model.ParsedTransaction{}, err
	}

	tx := model.ParsedTransaction{
		Date:             NormalizeDate(row["Date"]),
		Description:      row["Description"],
		Amount:           amount,
		OriginalCurrency: row["Currency"],
		PayeeName:        row["Payee Name"],
		Reference:        row["Payment Reference"],
	}

	// Exact pre-rounding amount; cannot fail once ParseAmount succeeded.
	tx.OriginalAmount, _ = parseDecimal(row["Amount"])

	// Optional numeric metadata is best-effort: a malformed optional column
	// never fails the row.
	if v := row["Exchange Rate"]; v != "" {
		if d, err := parseDecimal(v); err == nil {
			tx.ExchangeRate = d
		}
	}
	if v := row["Total fees"]; v != "" {
		if d, err := parseDecimal(v); err == nil {
			tx.Fees = d
		}
	}

	if tx.Reference == "" {
		tx.Reference = row["TransferWise ID"]
	}

	return tx, nil
}

func buildRevolut(row RawRow) (model.ParsedTransaction, error) {
	amount, err := ParseAmount(row["Amount"])
	if err != nil {
		return model.ParsedTransaction{}, err
	}

	return model.ParsedTransaction{
		Date:             NormalizeDate(row["Date"]),
		Description:      row["Description"],
		Amount:           amount,
		OriginalCurrency: row["Currency"],
	}, nil
}

func buildGeneric(row RawRow) (model.ParsedTransaction, error) {
	amount, err := ParseAmount(row["amount"])
	if err != nil {
		return model.ParsedTransaction{}, err
	}

	return model.ParsedTransaction{
		Date:        NormalizeDate(row["date"]),
		Description: row["description"],
		Amount:      amount,
	}, nil
}
