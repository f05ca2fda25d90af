package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiwake-dev/shiwake/internal/model"
)

// mockAccounts implements AccountChecker for testing.
type mockAccounts struct {
	codes map[string]bool
}

func (m *mockAccounts) Exists(code string) bool {
	return m.codes[code]
}

func testAccounts() *mockAccounts {
	return &mockAccounts{codes: map[string]bool{
		"EXP001": true,
		"EXP002": true,
		"AST002": true,
	}}
}

func validEntry() Entry {
	return Entry{
		Date:          "2025-01-15",
		Description:   "サーバー利用料",
		Amount:        1200,
		DebitAccount:  "EXP001",
		CreditAccount: "AST002",
		TaxCategory:   model.TaxStandard,
	}
}

func TestValidate_OK(t *testing.T) {
	assert.Empty(t, Validate(validEntry(), testAccounts()))
}

func TestValidate_NonCanonicalDate(t *testing.T) {
	e := validEntry()
	e.Date = "15-01-2025"
	errs := Validate(e, testAccounts())
	require.Len(t, errs, 1)
	assert.Equal(t, "date", errs[0].Field)
}

func TestValidate_ImpossibleCalendarDate(t *testing.T) {
	e := validEntry()
	e.Date = "2025-02-31"
	errs := Validate(e, testAccounts())
	require.Len(t, errs, 1)
	assert.Equal(t, "date", errs[0].Field)
	assert.Contains(t, errs[0].Error(), "2025-02-31")
}

func TestValidate_Description(t *testing.T) {
	e := validEntry()
	e.Description = "   "
	errs := Validate(e, testAccounts())
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)

	e.Description = strings.Repeat("あ", 201)
	errs = Validate(e, testAccounts())
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)

	e.Description = strings.Repeat("あ", 200)
	assert.Empty(t, Validate(e, testAccounts()))
}

func TestValidate_Amount(t *testing.T) {
	e := validEntry()

	e.Amount = 0
	errs := Validate(e, testAccounts())
	require.Len(t, errs, 1)
	assert.Equal(t, "amount", errs[0].Field)

	e.Amount = -500
	assert.Len(t, Validate(e, testAccounts()), 1)

	e.Amount = 999_999_999
	assert.Empty(t, Validate(e, testAccounts()))

	e.Amount = 1_000_000_000
	assert.Len(t, Validate(e, testAccounts()), 1)
}

func TestValidate_UnknownAccounts(t *testing.T) {
	e := validEntry()
	e.DebitAccount = "EXP999"
	errs := Validate(e, testAccounts())
	require.Len(t, errs, 1)
	assert.Equal(t, "debit_account", errs[0].Field)
	assert.Contains(t, errs[0].Error(), "EXP999")
}

func TestValidate_SameDebitAndCredit(t *testing.T) {
	e := validEntry()
	e.CreditAccount = e.DebitAccount
	errs := Validate(e, testAccounts())
	require.Len(t, errs, 1)
	assert.Equal(t, "credit_account", errs[0].Field)
}

func TestValidate_TaxCategory(t *testing.T) {
	e := validEntry()

	e.TaxCategory = "tax_5"
	errs := Validate(e, testAccounts())
	require.Len(t, errs, 1)
	assert.Equal(t, "tax_category", errs[0].Field)

	// Unset tax category is allowed.
	e.TaxCategory = ""
	assert.Empty(t, Validate(e, testAccounts()))
}

func TestValidate_Memo(t *testing.T) {
	e := validEntry()
	e.Memo = strings.Repeat("x", 501)
	errs := Validate(e, testAccounts())
	require.Len(t, errs, 1)
	assert.Equal(t, "memo", errs[0].Field)
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	e := Entry{Date: "garbage", Amount: -1}
	errs := Validate(e, testAccounts())
	// date, description, amount, debit, credit all invalid.
	assert.Len(t, errs, 5)
}
