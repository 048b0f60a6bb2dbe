package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/pocket/internal/cli"
	"github.com/theirongolddev/pocket/internal/model"
	"github.com/theirongolddev/pocket/internal/page"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Manage transactions",
	RunE:  runTxList,
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "Paged transaction list, newest first",
	RunE:  runTxList,
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	RunE:  runTxAdd,
}

var txConfirmCmd = &cobra.Command{
	Use:   "confirm <id>",
	Short: "Confirm a pending transaction by id prefix",
	Args:  cobra.ExactArgs(1),
	RunE:  runTxConfirm,
}

var (
	txPage     int
	txPageSize int
	txPending  bool

	txAddType     string
	txAddAmount   float64
	txAddCategory string
	txAddNote     string
	txAddDate     string
	txAddPending  bool
)

func init() {
	txListCmd.Flags().IntVarP(&txPage, "page", "p", 1, "Page number")
	txListCmd.Flags().IntVar(&txPageSize, "page-size", 0, "Rows per page (default from config)")
	txListCmd.Flags().BoolVar(&txPending, "pending", false, "Show only unconfirmed transactions")

	txAddCmd.Flags().StringVarP(&txAddType, "type", "t", "expense", "Transaction type (income or expense)")
	txAddCmd.Flags().Float64VarP(&txAddAmount, "amount", "a", 0, "Amount (positive)")
	txAddCmd.Flags().StringVarP(&txAddCategory, "category", "c", "", "Category name")
	txAddCmd.Flags().StringVarP(&txAddNote, "note", "n", "", "Free-form note")
	txAddCmd.Flags().StringVar(&txAddDate, "date", "", "Date (YYYY-MM-DD, default today)")
	txAddCmd.Flags().BoolVar(&txAddPending, "pending", false, "Record as unconfirmed")

	txCmd.AddCommand(txListCmd)
	txCmd.AddCommand(txAddCmd)
	txCmd.AddCommand(txConfirmCmd)
	rootCmd.AddCommand(txCmd)
}

func runTxList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()

	txs, err := ledger.Transactions()
	if err != nil {
		return err
	}

	entries := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.IsTemplate() {
			continue
		}
		if txPending && t.Confirmed {
			continue
		}
		entries = append(entries, t)
	}
	if len(entries) == 0 {
		fmt.Println("\n  No transactions.")
		return nil
	}

	// Newest first, ties broken by id for a stable ordering.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].ID < entries[j].ID
	})

	size := txPageSize
	if size <= 0 {
		size = cfg.General.PageSize
	}
	pg := page.Paginate(entries, size, txPage)

	cats, err := ledger.Categories()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("TRANSACTIONS"))
	fmt.Println()

	rows := make([][]string, 0, len(pg.Items))
	for _, t := range pg.Items {
		amount := cli.FormatMoney(t.Amount)
		if t.Type == model.TypeExpense {
			amount = "-" + amount
		}
		state := "ok"
		if !t.Confirmed {
			state = "pending"
		}
		rows = append(rows, []string{
			t.ID[:8],
			cli.FormatDate(t.Date),
			string(t.Type),
			amount,
			model.CategoryName(cats, t.CategoryID),
			t.Note,
			state,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Type", "Amount", "Category", "Note", "State"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println(cli.RenderPageFooter(pg.CurrentPage, pg.TotalPages, pg.TotalItems))
	fmt.Println()

	return nil
}

func runTxAdd(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()

	date, err := asOfDate()
	if err != nil {
		return err
	}
	if txAddDate != "" {
		date, err = model.ParseDate(txAddDate)
		if err != nil {
			return fmt.Errorf("bad --date %q: %w", txAddDate, err)
		}
	}

	categoryID := ""
	if txAddCategory != "" {
		cats, err := ledger.Categories()
		if err != nil {
			return err
		}
		for _, c := range cats {
			if strings.EqualFold(c.Name, txAddCategory) {
				categoryID = c.ID
				break
			}
		}
		if categoryID == "" {
			return fmt.Errorf("unknown category %q (see `pocket categories`)", txAddCategory)
		}
	}

	tx := model.Transaction{
		ID:         uuid.NewString(),
		Type:       model.TxType(txAddType),
		Amount:     txAddAmount,
		CategoryID: categoryID,
		Note:       txAddNote,
		Date:       date,
		Confirmed:  !txAddPending,
	}
	if err := tx.Validate(); err != nil {
		return err
	}
	if err := ledger.SaveTransaction(tx); err != nil {
		return err
	}

	fmt.Printf("\n  Recorded %s %s on %s\n\n",
		tx.Type, cli.FormatMoney(tx.Amount), cli.FormatDate(tx.Date))
	return nil
}

func runTxConfirm(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ledger, err := openLedger(cfg)
	if err != nil {
		return err
	}
	defer ledger.Close()

	txs, err := ledger.Transactions()
	if err != nil {
		return err
	}

	prefix := args[0]
	var match *model.Transaction
	for i := range txs {
		if strings.HasPrefix(txs[i].ID, prefix) {
			if match != nil {
				return fmt.Errorf("%q matches more than one transaction", prefix)
			}
			match = &txs[i]
		}
	}
	if match == nil {
		return fmt.Errorf("no transaction matches %q", prefix)
	}
	if match.Confirmed {
		fmt.Printf("\n  Transaction %s is already confirmed.\n\n", match.ID[:8])
		return nil
	}

	if err := ledger.ConfirmTransaction(match.ID); err != nil {
		return err
	}
	fmt.Printf("\n  Confirmed %s %s on %s\n\n",
		match.Type, cli.FormatMoney(match.Amount), cli.FormatDate(match.Date))
	return nil
}
