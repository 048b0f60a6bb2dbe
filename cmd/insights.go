package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pocket/internal/cli"
	"github.com/theirongolddev/pocket/internal/engine"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Budget alerts, forecasts, and reallocation tips",
	RunE:  runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(_ *cobra.Command, _ []string) error {
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

	policy := cfg.EnginePolicy()
	views := engine.BuildViews(budgets, txs, cats, asOf, policy)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("INSIGHTS  %s", cli.FormatDate(asOf))))
	fmt.Println()
	for _, in := range engine.Insights(views, policy) {
		fmt.Println(cli.RenderInsight(in))
	}
	fmt.Println()

	return nil
}
