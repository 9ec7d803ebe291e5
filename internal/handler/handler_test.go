package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"healthmonitor/internal/domain"
	"healthmonitor/internal/handler"
	"healthmonitor/internal/handler/mocks"
	"healthmonitor/internal/validation"
)

func newTestHandler(t *testing.T) (*handler.Handler, *mocks.MockMonitorService) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := mocks.NewMockMonitorService(t)
	h := handler.New(svc, nil, logger)
	return h, svc
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealth(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().Health().Return(domain.Health{
		Status:    "healthy",
		Uptime:    12,
		Memory:    domain.Memory{Used: 3, Total: 8, System: 16, Free: 4},
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Version:   "3.0.0",
	}).Once()

	c, rec := newContext(http.MethodGet, "/health", "")
	require.NoError(t, h.Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"status": "healthy",
		"uptime": 12,
		"memory": {"used": 3, "total": 8, "system": 16, "free": 4},
		"timestamp": "2026-01-01T00:00:00Z",
		"version": "3.0.0"
	}`, rec.Body.String())
}

func TestMetrics(t *testing.T) {
	h, svc := newTestHandler(t)

	snap := domain.MetricsSnapshot{
		StartTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Uptime:    60,
		Requests:  7,
		Themes:    map[domain.Theme]uint64{domain.ThemeDeveloper: 1, domain.ThemeGamer: 0},
		PageViews: map[domain.Page]uint64{domain.PageHome: 5, domain.PageAbout: 0, domain.PageWork: 0},
		Security:  domain.Security{BlockedIPs: []string{}},
		Timestamp: time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC),
		Alerts:    []domain.Alert{},
	}
	svc.EXPECT().Snapshot().Return(snap).Once()

	c, rec := newContext(http.MethodGet, "/metrics", "")
	require.NoError(t, h.Metrics(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.MetricsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, snap, got)
}

func TestTheme(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTheme string
		svcErr    error
	}{
		{"known theme", `{"theme":"gamer"}`, "gamer", nil},
		{"unknown theme still acknowledged", `{"theme":"neon"}`, "neon", validation.ErrUnknownTheme},
		{"malformed body still acknowledged", `not json`, "", validation.ErrUnknownTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.EXPECT().ChangeTheme(tt.wantTheme).Return(tt.svcErr).Once()

			c, rec := newContext(http.MethodPost, "/api/theme", tt.body)
			require.NoError(t, h.Theme(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		})
	}
}

func TestAlert(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, a domain.Alert)
	}{
		{
			name: "complete alert",
			body: `{"type":"deploy","message":"v2 live","severity":"medium","timestamp":"2026-02-01T10:00:00Z"}`,
			check: func(t *testing.T, a domain.Alert) {
				assert.Equal(t, "deploy", a.Type)
				assert.Equal(t, "v2 live", a.Message)
				assert.Equal(t, domain.SeverityMedium, a.Severity)
				assert.Equal(t, time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC), a.Timestamp)
			},
		},
		{
			name: "empty body gets defaults",
			body: ``,
			check: func(t *testing.T, a domain.Alert) {
				assert.Equal(t, domain.AlertTypeCustom, a.Type)
				assert.Empty(t, a.Message)
				assert.Equal(t, domain.SeverityLow, a.Severity)
				assert.WithinDuration(t, time.Now(), a.Timestamp, time.Minute)
			},
		},
		{
			name: "wrong typed message defaults to empty",
			body: `{"type":"system","message":42}`,
			check: func(t *testing.T, a domain.Alert) {
				assert.Equal(t, domain.AlertTypeSystem, a.Type)
				assert.Empty(t, a.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)

			var submitted domain.Alert
			svc.EXPECT().SubmitAlert(mock.Anything).
				RunAndReturn(func(a domain.Alert) domain.Alert {
					submitted = a
					return a
				}).Once()

			c, rec := newContext(http.MethodPost, "/api/alert", tt.body)
			require.NoError(t, h.Alert(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"success":true}`, rec.Body.String())
			tt.check(t, submitted)
		})
	}
}

func TestRegister_Routes(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Health().Return(domain.Health{Status: "healthy"}).Once()
	svc.EXPECT().ChangeTheme("developer").Return(nil).Once()

	e := echo.New()
	h.Register(e, "/ws")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/theme", strings.NewReader(`{"theme":"developer"}`))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/theme", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
