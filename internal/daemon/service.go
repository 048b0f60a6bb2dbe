// Package daemon provides a local read-only JSON API over the ledger:
// budget views, insights, and upcoming occurrences, recomputed on a
// poll interval.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/pocket/internal/engine"
	"github.com/theirongolddev/pocket/internal/model"
	"github.com/theirongolddev/pocket/internal/recur"
)

// Snapshot is one recomputed view of the ledger.
type Snapshot struct {
	At       time.Time          `json:"at"`
	Views    []model.BudgetView `json:"budgets"`
	Insights []model.Insight    `json:"insights"`
	Upcoming []UpcomingItem     `json:"upcoming"`
}

// UpcomingItem is a future occurrence of a recurring template.
type UpcomingItem struct {
	TemplateID string  `json:"template_id"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	Note       string  `json:"note,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	BudgetCount     int       `json:"budget_count"`
	InsightCount    int       `json:"insight_count"`
	LastError       string    `json:"last_error,omitempty"`
}

// SnapshotSource loads the ledger state the daemon serves. The store's
// Snapshot method satisfies it.
type SnapshotSource interface {
	Snapshot() ([]model.Transaction, []model.Budget, []model.Category, error)
}

// Config controls the daemon runtime behavior.
type Config struct {
	Addr     string
	Interval time.Duration
	Policy   engine.Policy
	Horizon  func(asOf time.Time) time.Time
}

// Service serves the ledger snapshot over HTTP.
type Service struct {
	cfg    Config
	source SnapshotSource
	log    zerolog.Logger

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
}

// New returns a new daemon service over the given ledger source.
func New(cfg Config, source SnapshotSource, log zerolog.Logger) *Service {
	if cfg.Interval < 2*time.Second {
		cfg.Interval = time.Minute
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:7459"
	}
	if cfg.Horizon == nil {
		// Default horizon: end of next month.
		cfg.Horizon = func(asOf time.Time) time.Time {
			y, m, _ := asOf.UTC().Date()
			return time.Date(y, m+2, 0, 0, 0, 0, 0, time.UTC)
		}
	}

	return &Service{
		cfg:       cfg,
		source:    source,
		log:       log,
		startedAt: time.Now(),
	}
}

// Router builds the gin handler. Split out from Run so tests can drive
// it with httptest.
func (s *Service) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/v1/status", s.handleStatus)
	r.GET("/v1/budgets", s.handleBudgets)
	r.GET("/v1/insights", s.handleInsights)
	r.GET("/v1/upcoming", s.handleUpcoming)

	return r
}

// Run serves the API and recomputes the snapshot until ctx is
// canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.Debug().Str("addr", s.cfg.Addr).Msg("daemon listening")

	// Seed the first snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	now := time.Now()
	snap, err := s.computeSnapshot(now)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastPollAt = now
	s.pollCount++
	if err != nil {
		s.lastError = err.Error()
		s.log.Warn().Err(err).Msg("daemon poll failed")
		return
	}
	s.lastError = ""
	s.hasSnapshot = true
	s.snapshot = snap
}

func (s *Service) computeSnapshot(now time.Time) (Snapshot, error) {
	txs, budgets, cats, err := s.source.Snapshot()
	if err != nil {
		return Snapshot{}, err
	}

	asOf := model.Midnight(now)
	views := engine.BuildViews(budgets, txs, cats, asOf, s.cfg.Policy)

	snap := Snapshot{
		At:       now,
		Views:    views,
		Insights: engine.Insights(views, s.cfg.Policy),
	}

	horizon := s.cfg.Horizon(asOf)
	for _, tx := range txs {
		if !tx.IsTemplate() {
			continue
		}
		after := tx.LastGenerated
		if after == nil {
			// Nothing materialized yet: only future occurrences are
			// "upcoming".
			after = &asOf
		}
		occ, err := recur.Expand(tx, recur.Options{Horizon: horizon, After: after})
		if err != nil {
			s.log.Warn().Str("template", tx.ID).Err(err).Msg("skipping malformed template")
			continue
		}
		for _, o := range occ {
			snap.Upcoming = append(snap.Upcoming, UpcomingItem{
				TemplateID: tx.ID,
				Date:       o.Date.Format(model.DateFormat),
				Amount:     o.Amount,
				Note:       o.Note,
			})
		}
	}

	return snap, nil
}

func (s *Service) handleStatus(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c.JSON(http.StatusOK, Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval / time.Second),
		PollCount:       s.pollCount,
		BudgetCount:     len(s.snapshot.Views),
		InsightCount:    len(s.snapshot.Insights),
		LastError:       s.lastError,
	})
}

func (s *Service) handleBudgets(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasSnapshot {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"at": s.snapshot.At, "budgets": s.snapshot.Views})
}

func (s *Service) handleInsights(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasSnapshot {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot not ready"})
		return
	}

	// Insight kinds serialize as labels, not enum ordinals.
	out := make([]gin.H, 0, len(s.snapshot.Insights))
	for _, in := range s.snapshot.Insights {
		item := gin.H{
			"kind":    in.Kind.String(),
			"title":   in.Title,
			"message": in.Message,
		}
		if in.BudgetID != "" {
			item["budget_id"] = in.BudgetID
		}
		if in.Kind == model.InsightBudgetAlert {
			item["percent"] = in.Percent
		}
		if in.Kind == model.InsightOverspendingForecast {
			item["projected_overage"] = in.Amount
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, gin.H{"at": s.snapshot.At, "insights": out})
}

func (s *Service) handleUpcoming(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasSnapshot {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "snapshot not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"at": s.snapshot.At, "upcoming": s.snapshot.Upcoming})
}

// Poll recomputes the snapshot immediately. Exposed for tests.
func (s *Service) Poll() {
	s.pollOnce()
}
