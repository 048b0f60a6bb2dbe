package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/pocket/internal/cli"
	"github.com/theirongolddev/pocket/internal/engine"
	"github.com/theirongolddev/pocket/internal/model"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage budgets",
	RunE:  runBudgetList,
}

var budgetListCmd = &cobra.Command{
	Use:   "list",
	Short: "Budget table with spend and status",
	RunE:  runBudgetList,
}

var budgetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a budget",
	RunE:  runBudgetAdd,
}

var budgetRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a budget by id prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetRemove,
}

func init() {
	budgetCmd.AddCommand(budgetListCmd)
	budgetCmd.AddCommand(budgetAddCmd)
	budgetCmd.AddCommand(budgetRemoveCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetList(_ *cobra.Command, _ []string) error {
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
	if len(budgets) == 0 {
		fmt.Println("\n  No budgets yet. Create one with `pocket budget add`.")
		return nil
	}

	views := engine.BuildViews(budgets, txs, cats, asOf, cfg.EnginePolicy())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGETS  %s", cli.FormatDate(asOf))))
	fmt.Println()
	fmt.Print(cli.RenderTable(budgetTable(views)))
	fmt.Println()
	for _, v := range views {
		fmt.Printf("  %-20s %s  %s\n", v.Budget.Name,
			cli.RenderSpendBar(v.Ratio, v.Status, 30),
			cli.FormatPeriod(v.Budget.StartDate, v.Budget.EndDate))
	}
	fmt.Println()

	return nil
}

func runBudgetAdd(_ *cobra.Command, _ []string) error {
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

	catOpts := make([]huh.Option[string], 0, len(cats)+1)
	catOpts = append(catOpts, huh.NewOption("All categories", ""))
	for _, c := range cats {
		if c.Type == model.TypeExpense {
			catOpts = append(catOpts, huh.NewOption(c.Name, c.ID))
		}
	}

	var (
		name, goalStr, startStr, endStr, categoryID string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Budget name").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Goal amount").
				Placeholder("500.00").
				Value(&goalStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("enter a positive amount")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(catOpts...).
				Value(&categoryID),
			huh.NewInput().
				Title("Start date (YYYY-MM-DD)").
				Value(&startStr).
				Validate(validateDateInput),
			huh.NewInput().
				Title("End date (YYYY-MM-DD)").
				Value(&endStr).
				Validate(validateDateInput),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	goal, _ := strconv.ParseFloat(strings.TrimSpace(goalStr), 64)
	start, _ := model.ParseDate(strings.TrimSpace(startStr))
	end, _ := model.ParseDate(strings.TrimSpace(endStr))

	b := model.Budget{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(name),
		CategoryID: categoryID,
		GoalAmount: goal,
		StartDate:  start,
		EndDate:    end,
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if err := ledger.SaveBudget(b); err != nil {
		return err
	}

	fmt.Printf("\n  Created budget %q (%s, %s)\n\n",
		b.Name, cli.FormatMoney(b.GoalAmount), cli.FormatPeriod(b.StartDate, b.EndDate))
	return nil
}

func runBudgetRemove(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()

	budgets, err := ledger.Budgets()
	if err != nil {
		return err
	}

	prefix := args[0]
	var match *model.Budget
	for i := range budgets {
		if strings.HasPrefix(budgets[i].ID, prefix) || budgets[i].Name == prefix {
			if match != nil {
				return fmt.Errorf("%q matches more than one budget", prefix)
			}
			match = &budgets[i]
		}
	}
	if match == nil {
		return fmt.Errorf("no budget matches %q", prefix)
	}

	if err := ledger.DeleteBudget(match.ID); err != nil {
		return err
	}
	fmt.Printf("\n  Deleted budget %q\n\n", match.Name)
	return nil
}

func validateDateInput(s string) error {
	if _, err := model.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}
