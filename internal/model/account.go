package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeExpense   AccountType = "expense"
	AccountTypeIncome    AccountType = "income"
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
)

// Account represents an entry in the chart of accounts, keyed by a short
// code like "EXP001".
type Account struct {
	Code        string
	Name        string
	Type        AccountType
	TaxDefault  TaxCategory
	Description string
}
