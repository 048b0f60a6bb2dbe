package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/pocket/internal/cli"
	"github.com/theirongolddev/pocket/internal/model"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	RunE:  runCategories,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var categoriesAddType string

func init() {
	categoriesAddCmd.Flags().StringVarP(&categoriesAddType, "type", "t", "expense", "Category type (income or expense)")
	categoriesCmd.AddCommand(categoriesAddCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
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

	fmt.Println()
	fmt.Println(cli.RenderTitle("CATEGORIES"))
	fmt.Println()

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{c.ID[:8], c.Name, string(c.Type)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Type"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()

	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	ctype := model.TxType(categoriesAddType)
	if !ctype.Valid() {
		return fmt.Errorf("bad --type %q: want income or expense", categoriesAddType)
	}

	cats, err := ledger.Categories()
	if err != nil {
		return err
	}
	for _, c := range cats {
		if strings.EqualFold(c.Name, name) {
			return fmt.Errorf("category %q already exists", c.Name)
		}
	}

	c := model.Category{ID: uuid.NewString(), Name: name, Type: ctype}
	if err := ledger.SaveCategory(c); err != nil {
		return err
	}
	fmt.Printf("\n  Created %s category %q\n\n", c.Type, c.Name)
	return nil
}
