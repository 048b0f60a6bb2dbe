package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pocket/internal/importer"
	"github.com/theirongolddev/pocket/internal/logger"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import transactions from a CSV export",
	Long: `Import transactions from a CSV file with columns:
date, type, amount, category, note

Imported rows are recorded as pending; review them with
` + "`pocket tx list --pending`" + ` and confirm the ones that are real.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()

	cats, err := ledger.Categories()
	if err != nil {
		return err
	}

	result, err := importer.ReadFile(args[0], cats, logger.New(flagVerbose))
	if err != nil {
		return err
	}

	if len(result.Transactions) > 0 {
		if err := ledger.SaveTransactions(result.Transactions); err != nil {
			return err
		}
	}

	fmt.Printf("\n  Imported %d transactions (%d rows skipped).\n", len(result.Transactions), result.Skipped)
	if result.Skipped > 0 && !flagVerbose {
		fmt.Println("  Re-run with --verbose to see why rows were skipped.")
	}
	if len(result.Transactions) > 0 {
		fmt.Println("  Review them with `pocket tx list --pending`.")
	}
	fmt.Println()

	return nil
}
