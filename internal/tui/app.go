// Package tui provides the interactive Bubble Tea dashboard for pocket.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/pocket/internal/config"
	"github.com/theirongolddev/pocket/internal/engine"
	"github.com/theirongolddev/pocket/internal/model"
	"github.com/theirongolddev/pocket/internal/recur"
	"github.com/theirongolddev/pocket/internal/tui/components"
	"github.com/theirongolddev/pocket/internal/tui/theme"
)

// Source loads ledger state for the dashboard. The store's Ledger
// satisfies it.
type Source interface {
	Snapshot() ([]model.Transaction, []model.Budget, []model.Category, error)
}

// DataLoadedMsg is sent when the initial ledger load finishes.
type DataLoadedMsg struct {
	Txs      []model.Transaction
	Budgets  []model.Budget
	Cats     []model.Category
	LoadTime time.Duration
	Err      error
}

// RefreshDataMsg is sent when a background refresh completes.
type RefreshDataMsg struct {
	Txs     []model.Transaction
	Budgets []model.Budget
	Cats    []model.Category
	Err     error
}

// App is the root Bubble Tea model.
type App struct {
	source Source

	// Ledger data
	txs     []model.Transaction
	budgets []model.Budget
	cats    []model.Category
	loaded  bool
	loadErr error

	loadTime    time.Duration
	lastRefresh time.Time
	refreshing  bool

	// Pre-computed for the current asOf date
	views    []model.BudgetView
	insights []model.Insight
	entries  []model.Transaction // dated entries, newest first
	upcoming []model.Transaction // expanded occurrences, soonest first

	// Evaluation inputs
	asOf    time.Time
	horizon time.Time
	policy  engine.Policy

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	budCursor int
	txState   transactionsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool

	spinner  spinner.Model
	pageSize int
}

type transactionsState struct {
	page        int
	pendingOnly bool
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(source Source, cfg config.Config, asOf, horizon time.Time) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	pageSize := cfg.General.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	return App{
		source:    source,
		asOf:      asOf,
		horizon:   horizon,
		policy:    cfg.EnginePolicy(),
		needSetup: !config.Exists(),
		pageSize:  pageSize,
		spinner:   sp,
		txState:   transactionsState{page: 1},
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.source),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	a.views = engine.BuildViews(a.budgets, a.txs, a.cats, a.asOf, a.policy)
	a.insights = engine.Insights(a.views, a.policy)

	// Dated entries for the transactions tab, newest first.
	a.entries = a.entries[:0]
	for _, t := range a.txs {
		if t.IsTemplate() {
			continue
		}
		a.entries = append(a.entries, t)
	}
	sort.SliceStable(a.entries, func(i, j int) bool {
		if !a.entries[i].Date.Equal(a.entries[j].Date) {
			return a.entries[i].Date.After(a.entries[j].Date)
		}
		return a.entries[i].ID < a.entries[j].ID
	})

	// Expand templates for the upcoming tab. Templates that fail
	// validation are skipped rather than taking the dashboard down.
	a.upcoming = a.upcoming[:0]
	for _, t := range a.txs {
		if !t.IsTemplate() {
			continue
		}
		after := t.LastGenerated
		if after == nil {
			d := a.asOf
			after = &d
		}
		occs, err := recur.Expand(t, recur.Options{Horizon: a.horizon, After: after})
		if err != nil {
			continue
		}
		a.upcoming = append(a.upcoming, occs...)
	}
	sort.SliceStable(a.upcoming, func(i, j int) bool {
		return a.upcoming[i].Date.Before(a.upcoming[j].Date)
	})

	// Clamp cursors to the recomputed lists
	if a.budCursor >= len(a.views) {
		a.budCursor = len(a.views) - 1
	}
	if a.budCursor < 0 {
		a.budCursor = 0
	}
	if a.txState.page < 1 {
		a.txState.page = 1
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 1 && a.budCursor > 0 {
				a.budCursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == 1 && a.budCursor < len(a.views)-1 {
				a.budCursor++
			}
			return a, nil

		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		if key == "r" && !a.refreshing {
			a.refreshing = true
			return a, refreshDataCmd(a.source)
		}

		// Budgets tab cursor
		if a.activeTab == 1 {
			switch key {
			case "j", "down":
				if a.budCursor < len(a.views)-1 {
					a.budCursor++
				}
				return a, nil
			case "k", "up":
				if a.budCursor > 0 {
					a.budCursor--
				}
				return a, nil
			case "g":
				a.budCursor = 0
				return a, nil
			case "G":
				a.budCursor = len(a.views) - 1
				if a.budCursor < 0 {
					a.budCursor = 0
				}
				return a, nil
			}
		}

		// Transactions tab paging
		if a.activeTab == 2 {
			switch key {
			case "n", "l":
				a.txState.page++
				return a, nil
			case "p", "h":
				if a.txState.page > 1 {
					a.txState.page--
				}
				return a, nil
			case "f":
				a.txState.pendingOnly = !a.txState.pendingOnly
				a.txState.page = 1
				return a, nil
			}
		}

		// Tab navigation
		switch key {
		case "o":
			a.activeTab = 0
		case "b":
			a.activeTab = 1
		case "t":
			a.activeTab = 2
		case "u":
			a.activeTab = 3
		case "i":
			a.activeTab = 4
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil

	case DataLoadedMsg:
		a.txs = msg.Txs
		a.budgets = msg.Budgets
		a.cats = msg.Cats
		a.loadErr = msg.Err
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.lastRefresh = time.Now()
		a.recompute()

		// Activate first-run setup after data loads
		if a.needSetup {
			a.setupForm = newSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}

		return a, nil

	case RefreshDataMsg:
		a.refreshing = false
		a.lastRefresh = time.Now()
		if msg.Err == nil {
			a.txs = msg.Txs
			a.budgets = msg.Budgets
			a.cats = msg.Cats
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  pocket needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active
	w := a.width
	h := a.height

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ pocket"))
	b.WriteString(subtitleStyle.Render(" · Budget Tracker"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Render(a.spinner.View()))
	b.WriteString(subtitleStyle.Render(" Opening ledger..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o b t u i", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move budget cursor"},
		{"n p", "Next / Previous page"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"f", "Toggle pending filter"},
		{"r", "Refresh ledger"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.asOf.Format(model.DateFormat), a.refreshing)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderBudgetsTab(cw)
	case 2:
		content = a.renderTransactionsTab(cw, contentH)
	case 3:
		content = a.renderUpcomingTab(cw, contentH)
	case 4:
		content = a.renderInsightsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// loadDataCmd loads the ledger snapshot in a background command.
func loadDataCmd(source Source) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		txs, budgets, cats, err := source.Snapshot()
		return DataLoadedMsg{
			Txs:      txs,
			Budgets:  budgets,
			Cats:     cats,
			LoadTime: time.Since(start),
			Err:      err,
		}
	}
}

// refreshDataCmd reloads the ledger snapshot without the loading UI.
func refreshDataCmd(source Source) tea.Cmd {
	return func() tea.Msg {
		txs, budgets, cats, err := source.Snapshot()
		return RefreshDataMsg{Txs: txs, Budgets: budgets, Cats: cats, Err: err}
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Two separator columns between tabs.
		if i < len(components.Tabs)-1 {
			pos += 2
		}
	}
	return -1
}
