// Package ledger holds the double-entry record shape and the strict
// validation a record must pass before a caller persists it. The import
// pipeline is deliberately lenient about dates; this package is where
// non-canonical values get rejected.
package ledger

import "github.com/shiwake-dev/shiwake/internal/model"

// Entry is one double-entry bookkeeping record: a positive amount moved
// from the credit account to the debit account on a given date.
type Entry struct {
	Date          string // YYYY-MM-DD
	Description   string
	Amount        int64 // whole units, always positive
	DebitAccount  string
	CreditAccount string
	TaxCategory   model.TaxCategory
	Memo          string
	Confirmed     bool
}

// FromParsed lifts a canonical import transaction into an Entry between
// two accounts. The amount's sign only encodes direction in a bank export,
// so it is folded into the debit/credit pair chosen by the caller. The
// debit account's default tax category applies; the bank reference is kept
// as the memo.
func FromParsed(tx model.ParsedTransaction, debit, credit model.Account) Entry {
	amount := tx.Amount
	if amount < 0 {
		amount = -amount
	}
	return Entry{
		Date:          tx.Date,
		Description:   tx.Description,
		Amount:        amount,
		DebitAccount:  debit.Code,
		CreditAccount: credit.Code,
		TaxCategory:   debit.TaxDefault,
		Memo:          tx.Reference,
	}
}
