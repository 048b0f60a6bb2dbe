package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pocket/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to pocket!")
	fmt.Println()

	// 1. Data directory
	fmt.Println("  1. Ledger data directory")
	fmt.Printf("     Current: %s\n", cfg.DataDir())
	fmt.Print("     > ")
	dataDir, _ := reader.ReadString('\n')
	dataDir = strings.TrimSpace(dataDir)
	if dataDir != "" {
		cfg.General.DataDir = dataDir
	}
	fmt.Println()

	// 2. Near-limit threshold
	fmt.Println("  2. Near-limit alert threshold")
	fmt.Printf("     Warn when a budget hits this percent of its goal [%d]\n", cfg.Policy.NearLimitPercent)
	fmt.Print("     > ")
	pctStr, _ := reader.ReadString('\n')
	pctStr = strings.TrimSpace(pctStr)
	if pctStr != "" {
		if pct, err := strconv.Atoi(pctStr); err == nil && pct >= 1 && pct <= 100 {
			cfg.Policy.NearLimitPercent = pct
		} else {
			fmt.Println("     Keeping current value (want 1-100).")
		}
	}
	fmt.Println()

	// 3. Page size
	fmt.Println("  3. Transactions per page")
	fmt.Println("     (1) 10 [default]")
	fmt.Println("     (2) 20")
	fmt.Println("     (3) 50")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	choice = strings.TrimSpace(choice)
	switch choice {
	case "2":
		cfg.General.PageSize = 20
	case "3":
		cfg.General.PageSize = 50
	default:
		cfg.General.PageSize = 10
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	themeChoice = strings.TrimSpace(themeChoice)
	switch themeChoice {
	case "2":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `pocket setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
