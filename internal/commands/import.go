package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/shiwake-dev/shiwake/internal/config"
	"github.com/shiwake-dev/shiwake/internal/importer"
	"github.com/shiwake-dev/shiwake/internal/importlog"
	"github.com/shiwake-dev/shiwake/internal/model"
)

func newImportCommand() *cobra.Command {
	var formatFlag string
	var dryRun bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "import <file|dir>",
		Short: "Parse bank statements into canonical transactions",
		Long: "Parses one CSV statement, or every CSV under <dir>/import/, " +
			"detecting the bank dialect from the header row. Rows that fail " +
			"validation are reported individually; the rest are written as " +
			"canonical transaction CSV.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var format model.CsvFormat
			if formatFlag != "" {
				format = model.CsvFormat(formatFlag)
				if !format.Valid() {
					return fmt.Errorf("unknown format %q (want wise, revolut, or generic)", formatFlag)
				}
			}
			return runImport(args[0], format, dryRun, outPath)
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "", "force dialect (wise|revolut|generic)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report without moving files to import/processed/")
	cmd.Flags().StringVar(&outPath, "out", "", "write canonical CSV to a file instead of stdout")

	return cmd
}

func runImport(path string, format model.CsvFormat, dryRun bool, outPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}

	if !info.IsDir() {
		res, err := importFile(path, info.Size(), format, cfg)
		if err != nil {
			return err
		}
		report(path, res)
		return writeTransactions(out, res.Transactions)
	}

	files, err := importer.Scan(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("nothing to import")
		return nil
	}

	var all []model.ParsedTransaction
	for _, f := range files {
		res, err := importFile(f.Path, f.Size, format, cfg)
		if err != nil {
			return err
		}
		report(f.Path, res)
		all = append(all, res.Transactions...)

		if dryRun {
			continue
		}

		entry := importlog.Entry{
			Timestamp: time.Now(),
			FileName:  f.Name,
			Format:    string(res.Format),
			BatchID:   res.BatchID.String(),
			Succeeded: res.Succeeded(),
			Failed:    res.Failed(),
		}
		if err := importlog.Append(path, []importlog.Entry{entry}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write import log: %v\n", err)
		}

		// Keep files with failed rows around for a corrected re-run.
		if res.Failed() == 0 {
			if err := importer.MarkProcessed(path, f.Name); err != nil {
				return err
			}
		}
	}
	return writeTransactions(out, all)
}

// importFile applies the caller-side import policy (file size and row
// budget from config, forced dialects) around the parsing pipeline.
func importFile(path string, size int64, format model.CsvFormat, cfg *config.Config) (*importer.Result, error) {
	if size > cfg.Import.MaxFileBytes {
		return nil, fmt.Errorf("%s: file is %d bytes, limit is %d", path, size, cfg.Import.MaxFileBytes)
	}

	if format == "" {
		format = cfg.FormatFor(filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := importer.ParseAs(f, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if rows := res.Succeeded() + res.Failed(); rows > cfg.Import.MaxRows {
		return nil, fmt.Errorf("%s: %d rows exceeds the per-import limit of %d", path, rows, cfg.Import.MaxRows)
	}
	return res, nil
}

func report(path string, res *importer.Result) {
	fmt.Fprintf(os.Stderr, "%s: %s format, batch %s\n", filepath.Base(path), res.Format, res.BatchID)
	for _, re := range res.Errors {
		fmt.Fprintf(os.Stderr, "  %s\n", re.Error())
	}
	fmt.Fprintf(os.Stderr, "  %d parsed, %d failed\n", res.Succeeded(), res.Failed())
}

// canonicalHeader is the column layout of the emitted transaction CSV.
var canonicalHeader = []string{
	"date", "description", "amount",
	"original_amount", "original_currency", "exchange_rate", "fees",
	"payee_name", "reference",
}

func writeTransactions(w io.Writer, txns []model.ParsedTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(canonicalHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txns {
		row := []string{
			tx.Date,
			tx.Description,
			strconv.FormatInt(tx.Amount, 10),
			decimalField(tx.OriginalAmount),
			tx.OriginalCurrency,
			decimalField(tx.ExchangeRate),
			decimalField(tx.Fees),
			tx.PayeeName,
			tx.Reference,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// decimalField renders optional metadata: zero means the source dialect
// did not provide the value.
func decimalField(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func loadConfig() (*config.Config, error) {
	path := config.Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(""), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
