package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pocket/internal/cli"
	"github.com/theirongolddev/pocket/internal/model"
	"github.com/theirongolddev/pocket/internal/recur"
)

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Occurrences due from recurring templates",
	RunE:  runUpcoming,
}

var upcomingMaterialize bool

func init() {
	upcomingCmd.Flags().BoolVar(&upcomingMaterialize, "materialize", false, "Write the occurrences into the ledger")
	rootCmd.AddCommand(upcomingCmd)
}

func runUpcoming(_ *cobra.Command, _ []string) error {
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
	horizon := expansionHorizon(cfg, asOf)

	templates, err := ledger.Templates()
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		fmt.Println("\n  No recurring templates.")
		return nil
	}

	cats, err := ledger.Categories()
	if err != nil {
		return err
	}

	type expansion struct {
		template    model.Transaction
		occurrences []model.Transaction
	}
	var expansions []expansion
	total := 0
	for _, tmpl := range templates {
		opts := recur.Options{Horizon: horizon, After: tmpl.LastGenerated}
		occs, err := recur.Expand(tmpl, opts)
		if err != nil {
			return fmt.Errorf("template %s: %w", tmpl.ID[:8], err)
		}
		if len(occs) == 0 {
			continue
		}
		expansions = append(expansions, expansion{template: tmpl, occurrences: occs})
		total += len(occs)
	}
	if total == 0 {
		fmt.Printf("\n  Nothing due through %s.\n", cli.FormatDate(horizon))
		return nil
	}

	var flat []model.Transaction
	for _, e := range expansions {
		flat = append(flat, e.occurrences...)
	}
	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].Date.Before(flat[j].Date)
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("UPCOMING  through %s", cli.FormatDate(horizon))))
	fmt.Println()

	rows := make([][]string, 0, len(flat))
	for _, t := range flat {
		amount := cli.FormatMoney(t.Amount)
		if t.Type == model.TypeExpense {
			amount = "-" + amount
		}
		rows = append(rows, []string{
			cli.FormatDate(t.Date),
			string(t.Type),
			amount,
			model.CategoryName(cats, t.CategoryID),
			t.Note,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Type", "Amount", "Category", "Note"},
		Rows:    rows,
	}))
	fmt.Println()

	if !upcomingMaterialize {
		fmt.Printf("  %d occurrences pending. Re-run with --materialize to record them.\n\n", total)
		return nil
	}

	for _, e := range expansions {
		if err := ledger.SaveTransactions(e.occurrences); err != nil {
			return err
		}
		last := e.occurrences[len(e.occurrences)-1].Date
		if err := ledger.SetLastGenerated(e.template.ID, last); err != nil {
			return err
		}
	}
	fmt.Printf("  Recorded %d occurrences from %d templates.\n\n", total, len(expansions))
	return nil
}
