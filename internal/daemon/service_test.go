package daemon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/pocket/internal/engine"
	"github.com/theirongolddev/pocket/internal/logger"
	"github.com/theirongolddev/pocket/internal/model"
)

type fakeSource struct {
	txs     []model.Transaction
	budgets []model.Budget
	cats    []model.Category
	err     error
}

func (f fakeSource) Snapshot() ([]model.Transaction, []model.Budget, []model.Category, error) {
	return f.txs, f.budgets, f.cats, f.err
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestService(t *testing.T, src SnapshotSource) *Service {
	t.Helper()
	svc := New(Config{Policy: engine.DefaultPolicy()}, src, logger.NewWithWriter(testWriter{t}))
	svc.Poll()
	return svc
}

func get(t *testing.T, svc *Service, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	svc.Router().ServeHTTP(w, req)
	return w
}

func fixtureSource(t *testing.T) fakeSource {
	t.Helper()
	start := model.Midnight(time.Now().UTC()).AddDate(0, 0, -15)
	end := start.AddDate(0, 0, 30)

	return fakeSource{
		cats: []model.Category{{ID: "c1", Name: "Groceries", Type: model.TypeExpense}},
		budgets: []model.Budget{{
			ID: "b1", Name: "Groceries", CategoryID: "c1",
			GoalAmount: 100, StartDate: start, EndDate: end,
		}},
		txs: []model.Transaction{{
			ID: "t1", Type: model.TypeExpense, Amount: 150,
			CategoryID: "c1", Date: start.AddDate(0, 0, 1), Confirmed: true,
		}},
	}
}

func TestHealthz(t *testing.T) {
	svc := newTestService(t, fakeSource{})
	w := get(t, svc, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStatusReflectsPolls(t *testing.T) {
	svc := newTestService(t, fixtureSource(t))
	w := get(t, svc, "/v1/status")
	require.Equal(t, http.StatusOK, w.Code)

	var st Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, int64(1), st.PollCount)
	assert.Equal(t, 1, st.BudgetCount)
	assert.Empty(t, st.LastError)
}

func TestBudgetsEndpoint(t *testing.T) {
	svc := newTestService(t, fixtureSource(t))
	w := get(t, svc, "/v1/budgets")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Budgets []model.BudgetView `json:"budgets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Budgets, 1)
	assert.Equal(t, 150.0, body.Budgets[0].Spent)
	assert.True(t, body.Budgets[0].Exceeded)
}

func TestInsightsEndpointUsesLabels(t *testing.T) {
	svc := newTestService(t, fixtureSource(t))
	w := get(t, svc, "/v1/insights")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Insights []map[string]any `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Insights)
	assert.Equal(t, "Budget Exceeded", body.Insights[0]["kind"])
	assert.Equal(t, "b1", body.Insights[0]["budget_id"])
}

func TestUpcomingListsFutureOccurrences(t *testing.T) {
	src := fixtureSource(t)
	today := model.Midnight(time.Now().UTC())
	src.txs = append(src.txs, model.Transaction{
		ID: "tmpl", Type: model.TypeExpense, Amount: 9.99,
		CategoryID: "c1", Date: today.AddDate(0, 0, -30), Confirmed: true,
		Recurrence: &model.Recurrence{Frequency: model.FreqDaily},
	})

	svc := newTestService(t, src)
	w := get(t, svc, "/v1/upcoming")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Upcoming []UpcomingItem `json:"upcoming"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Upcoming)
	for _, item := range body.Upcoming {
		d := date(t, item.Date)
		assert.True(t, d.After(today), "occurrence %s should be after today", item.Date)
		assert.Equal(t, "tmpl", item.TemplateID)
	}
}

func TestEndpointsUnavailableBeforeFirstSnapshot(t *testing.T) {
	svc := New(Config{Policy: engine.DefaultPolicy()}, fakeSource{}, logger.NewWithWriter(testWriter{t}))
	w := get(t, svc, "/v1/budgets")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPollErrorSurfacesInStatus(t *testing.T) {
	svc := newTestService(t, fakeSource{err: assert.AnError})
	w := get(t, svc, "/v1/status")
	require.Equal(t, http.StatusOK, w.Code)

	var st Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.NotEmpty(t, st.LastError)
}
