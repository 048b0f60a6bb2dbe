package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/pocket/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.DataDir())
	fmt.Printf("    Ledger:         %s\n", cfg.LedgerPath())
	fmt.Printf("    Page size:      %d\n", cfg.General.PageSize)
	fmt.Printf("    Horizon:        %d months\n", cfg.General.HorizonMonths)
	fmt.Println()

	fmt.Println("  [Policy]")
	fmt.Printf("    Near-limit threshold: %d%%\n", cfg.Policy.NearLimitPercent)
	fmt.Printf("    Underused threshold:  %d%%\n", cfg.Policy.UnderusedPercent)
	fmt.Printf("    Overused threshold:   %d%%\n", cfg.Policy.OverusedPercent)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Daemon]")
	fmt.Printf("    Address:       %s\n", cfg.Daemon.Addr)
	fmt.Printf("    Poll interval: %ds\n", cfg.Daemon.PollIntervalSec)
	fmt.Println()

	fmt.Println("  Run `pocket setup` to reconfigure.")
	return nil
}
