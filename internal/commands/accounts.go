package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/accounts"
	"github.com/shiwake-dev/shiwake/internal/model"
)

func newAccountsCommand() *cobra.Command {
	var typeFlag string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := accounts.Load(".")
			if err != nil {
				return err
			}

			list := svc.All()
			if typeFlag != "" {
				list = svc.ByType(model.AccountType(typeFlag))
				if len(list) == 0 {
					return fmt.Errorf("no accounts of type %q", typeFlag)
				}
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tNAME\tTYPE\tTAX DEFAULT")
			for _, a := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Code, a.Name, a.Type, a.TaxDefault)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&typeFlag, "type", "", "filter by account type (expense|income|asset|liability)")

	return cmd
}
