package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/importer"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>",
		Short: "Print the detected CSV dialect of a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			headers, _, err := importer.Read(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			fmt.Println(importer.DetectFormat(headers))
			return nil
		},
	}
}
