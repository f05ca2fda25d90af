package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/accounts"
	"github.com/shiwake-dev/shiwake/internal/ledger"
	"github.com/shiwake-dev/shiwake/internal/model"
)

func newCheckCommand() *cobra.Command {
	var entry ledger.Entry
	var tax string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a journal entry without recording it",
		Long: "Checks a proposed double-entry record against the chart of " +
			"accounts and field constraints, reporting every violation.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := accounts.Load(".")
			if err != nil {
				return err
			}

			entry.TaxCategory = model.TaxCategory(tax)
			if entry.TaxCategory == "" {
				if a, ok := svc.Get(entry.DebitAccount); ok {
					entry.TaxCategory = a.TaxDefault
				}
			}

			errs := ledger.Validate(entry, svc)
			if len(errs) == 0 {
				fmt.Printf("ok: %s %s %d (%s / %s)\n",
					entry.Date, entry.Description, entry.Amount,
					entry.DebitAccount, entry.CreditAccount)
				return nil
			}

			for _, ve := range errs {
				fmt.Printf("invalid %s\n", ve.Error())
			}
			return fmt.Errorf("%d validation error(s)", len(errs))
		},
	}

	cmd.Flags().StringVar(&entry.Date, "date", "", "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&entry.Description, "description", "", "entry description")
	cmd.Flags().Int64Var(&entry.Amount, "amount", 0, "amount in whole units")
	cmd.Flags().StringVar(&entry.DebitAccount, "debit", "", "debit account code")
	cmd.Flags().StringVar(&entry.CreditAccount, "credit", "", "credit account code")
	cmd.Flags().StringVar(&tax, "tax", "", "tax category (defaults to the debit account's)")
	cmd.Flags().StringVar(&entry.Memo, "memo", "", "free-form memo")

	return cmd
}
