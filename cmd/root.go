// Package cmd implements the pocket CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pocket/internal/cli"
	"github.com/theirongolddev/pocket/internal/config"
	"github.com/theirongolddev/pocket/internal/engine"
	"github.com/theirongolddev/pocket/internal/logger"
	"github.com/theirongolddev/pocket/internal/model"
	"github.com/theirongolddev/pocket/internal/store"
)

var (
	flagAsOf    string
	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pocket",
	Short: "Personal budget tracker",
	Long:  "Track income and expenses, watch budget health, and catch overspending before it happens.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Evaluate budgets as of this date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the ledger data directory")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig applies the data-dir flag on top of the config file.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg, nil
}

// openLedger is the shared data access path used by all commands.
func openLedger(cfg config.Config) (*store.Ledger, error) {
	return store.Open(cfg.LedgerPath(), logger.New(flagVerbose))
}

// asOfDate resolves the --as-of flag, defaulting to today.
func asOfDate() (time.Time, error) {
	if flagAsOf == "" {
		return model.Midnight(time.Now()), nil
	}
	d, err := model.ParseDate(flagAsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad --as-of date %q: %w", flagAsOf, err)
	}
	return d, nil
}

// expansionHorizon is the forward limit for open-ended templates:
// the last day of the month HorizonMonths ahead of asOf.
func expansionHorizon(cfg config.Config, asOf time.Time) time.Time {
	months := cfg.General.HorizonMonths
	if months < 1 {
		months = 1
	}
	y, m, _ := asOf.UTC().Date()
	return time.Date(y, m+time.Month(months)+1, 0, 0, 0, 0, 0, time.UTC)
}

func runOverview(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()

	asOf, err := asOfDate()
	if err != nil {
		return err
	}

	txs, budgets, cats, err := ledger.Snapshot()
	if err != nil {
		return err
	}

	if len(budgets) == 0 && len(txs) == 0 {
		fmt.Println("\n  Empty ledger.")
		fmt.Println("  Add a budget with `pocket budget add`, or import transactions with `pocket import`.")
		return nil
	}

	policy := cfg.EnginePolicy()
	views := engine.BuildViews(budgets, txs, cats, asOf, policy)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("POCKET  %s", cli.FormatDate(asOf))))
	fmt.Println()

	if len(views) > 0 {
		fmt.Print(cli.RenderTable(budgetTable(views)))
	}

	fmt.Println()
	for _, in := range engine.Insights(views, policy) {
		fmt.Println(cli.RenderInsight(in))
	}
	fmt.Println()

	return nil
}

// budgetTable builds the shared budget table used by the overview and
// budgets commands.
func budgetTable(views []model.BudgetView) cli.Table {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		status := v.Status.String()
		if v.Expired {
			status = "Expired"
		}
		projected := "-"
		if v.Forecast != nil {
			projected = cli.FormatMoney(v.Forecast.ProjectedTotal)
		}
		rows = append(rows, []string{
			v.Budget.Name,
			v.CategoryName,
			cli.FormatMoney(v.Spent),
			cli.FormatMoney(v.Budget.GoalAmount),
			cli.FormatPercent(v.Ratio),
			projected,
			status,
		})
	}
	return cli.Table{
		Headers: []string{"Budget", "Category", "Spent", "Goal", "Used", "Projected", "Status"},
		Rows:    rows,
	}
}
