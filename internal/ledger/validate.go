package ledger

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxAmount      = 999_999_999
	maxDescription = 200
	maxMemo        = 500
	dateFormat     = "2006-01-02"
)

var canonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError describes a single rejected field of an entry.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// AccountChecker tests whether an account code exists in the chart of
// accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// Validate checks an entry against every field constraint and returns all
// violations, not just the first.
func Validate(e Entry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	if !canonicalDate.MatchString(e.Date) {
		errs = append(errs, ValidationError{"date", fmt.Sprintf("not a YYYY-MM-DD date: %q", e.Date)})
	} else if _, err := time.Parse(dateFormat, e.Date); err != nil {
		errs = append(errs, ValidationError{"date", fmt.Sprintf("not a real calendar date: %q", e.Date)})
	}

	desc := strings.TrimSpace(e.Description)
	if desc == "" {
		errs = append(errs, ValidationError{"description", "must not be empty"})
	} else if utf8.RuneCountInString(desc) > maxDescription {
		errs = append(errs, ValidationError{"description", fmt.Sprintf("longer than %d characters", maxDescription)})
	}

	if e.Amount <= 0 {
		errs = append(errs, ValidationError{"amount", "must be a positive integer"})
	} else if e.Amount > maxAmount {
		errs = append(errs, ValidationError{"amount", fmt.Sprintf("exceeds %d", maxAmount)})
	}

	if !accounts.Exists(e.DebitAccount) {
		errs = append(errs, ValidationError{"debit_account", fmt.Sprintf("unknown account code %q", e.DebitAccount)})
	}
	if !accounts.Exists(e.CreditAccount) {
		errs = append(errs, ValidationError{"credit_account", fmt.Sprintf("unknown account code %q", e.CreditAccount)})
	}
	if e.DebitAccount != "" && e.DebitAccount == e.CreditAccount {
		errs = append(errs, ValidationError{"credit_account", "debit and credit accounts must differ"})
	}

	if e.TaxCategory != "" && !e.TaxCategory.Valid() {
		errs = append(errs, ValidationError{"tax_category", fmt.Sprintf("unknown tax category %q", e.TaxCategory)})
	}

	if utf8.RuneCountInString(e.Memo) > maxMemo {
		errs = append(errs, ValidationError{"memo", fmt.Sprintf("longer than %d characters", maxMemo)})
	}

	return errs
}
