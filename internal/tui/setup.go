package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/pocket/internal/config"
	"github.com/theirongolddev/pocket/internal/tui/theme"
)

// setupValues holds the first-run form answers.
type setupValues struct {
	nearLimit string
	pageSize  string
	themeName string
}

// newSetupForm builds the first-run huh form shown when no config
// file exists yet.
func newSetupForm(vals *setupValues) *huh.Form {
	defaults := config.DefaultConfig()
	vals.nearLimit = strconv.Itoa(defaults.Policy.NearLimitPercent)
	vals.pageSize = strconv.Itoa(defaults.General.PageSize)
	vals.themeName = defaults.Appearance.Theme

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Name, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to pocket!").
				Description("A few settings before the dashboard starts."),
			huh.NewSelect[string]().
				Title("Near-limit alert threshold").
				Description("Warn when a budget reaches this share of its goal").
				Options(
					huh.NewOption("70%", "70"),
					huh.NewOption("80%", "80"),
					huh.NewOption("90%", "90"),
				).
				Value(&vals.nearLimit),
			huh.NewSelect[string]().
				Title("Transactions per page").
				Options(
					huh.NewOption("10", "10"),
					huh.NewOption("20", "20"),
					huh.NewOption("50", "50"),
				).
				Value(&vals.pageSize),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.themeName),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		_ = a.saveSetupConfig()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) saveSetupConfig() error {
	cfg, _ := config.Load()

	if pct, err := strconv.Atoi(a.setupVals.nearLimit); err == nil && pct >= 1 && pct <= 100 {
		cfg.Policy.NearLimitPercent = pct
		a.policy = cfg.EnginePolicy()
	}
	if size, err := strconv.Atoi(a.setupVals.pageSize); err == nil && size > 0 {
		cfg.General.PageSize = size
		a.pageSize = size
	}
	if a.setupVals.themeName != "" {
		cfg.Appearance.Theme = a.setupVals.themeName
		theme.SetActive(cfg.Appearance.Theme)
	}

	return config.Save(cfg)
}
