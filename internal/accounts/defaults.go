package accounts

import "github.com/shiwake-dev/shiwake/internal/model"

// DefaultChart returns the preset chart of accounts for a freelance IT
// sole proprietor filing a blue return.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: "EXP001", Name: "通信費", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP002", Name: "消耗品費", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP003", Name: "旅費交通費", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP004", Name: "地代家賃", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP005", Name: "水道光熱費", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP006", Name: "新聞図書費", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP007", Name: "支払手数料", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP008", Name: "外注費", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP009", Name: "接待交際費", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP010", Name: "雑費", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP011", Name: "減価償却費", Type: model.AccountTypeExpense, TaxDefault: model.TaxNotApplicable},
		{Code: "EXP012", Name: "広告宣伝費", Type: model.AccountTypeExpense, TaxDefault: model.TaxStandard},
		{Code: "EXP013", Name: "租税公課", Type: model.AccountTypeExpense, TaxDefault: model.TaxNotApplicable},
		{Code: "INC001", Name: "売上高", Type: model.AccountTypeIncome, TaxDefault: model.TaxStandard},
		{Code: "INC002", Name: "雑収入", Type: model.AccountTypeIncome, TaxDefault: model.TaxStandard},
		{Code: "AST001", Name: "現金", Type: model.AccountTypeAsset, TaxDefault: model.TaxNotApplicable},
		{Code: "AST002", Name: "普通預金", Type: model.AccountTypeAsset, TaxDefault: model.TaxNotApplicable},
		{Code: "AST003", Name: "売掛金", Type: model.AccountTypeAsset, TaxDefault: model.TaxNotApplicable},
		{Code: "AST004", Name: "事業主貸", Type: model.AccountTypeAsset, TaxDefault: model.TaxNotApplicable},
		{Code: "LIA001", Name: "未払金", Type: model.AccountTypeLiability, TaxDefault: model.TaxNotApplicable},
		{Code: "LIA002", Name: "事業主借", Type: model.AccountTypeLiability, TaxDefault: model.TaxNotApplicable},
	}
}
