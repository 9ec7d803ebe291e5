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

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthmonitor/internal/broadcast"
	"healthmonitor/internal/domain"
	"healthmonitor/internal/handler"
	"healthmonitor/internal/idgen"
	"healthmonitor/internal/monitor"
	"healthmonitor/internal/service"
	servicemocks "healthmonitor/internal/service/mocks"
)

func newPipeline(t *testing.T) (*echo.Echo, *broadcast.Broadcaster) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ids, err := idgen.New()
	require.NoError(t, err)

	store := monitor.NewStore()
	b := broadcast.New(store, ids, nil, broadcast.Config{SendTimeout: time.Second}, logger)
	t.Cleanup(b.Close)

	svc := service.NewMonitorService(store, b, servicemocks.NewMockStrikeCounter(t),
		service.Config{Version: "test"}, logger)

	e := echo.New()
	handler.New(svc, b, logger).Register(e, "/ws")
	return e, b
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAlert_OutOfRangeTimestampKeepsMetricsServable(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"epoch past year 9999", `{"message":"x","timestamp":253402300800000}`},
		{"negative epoch", `{"message":"x","timestamp":-9223372036854775808}`},
		{"string epoch", `{"message":"x","timestamp":"9223372036854775807"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, b := newPipeline(t)

			rec := serve(e, http.MethodPost, "/api/alert", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"success":true}`, rec.Body.String())

			rec = serve(e, http.MethodGet, "/metrics", "")
			require.Equal(t, http.StatusOK, rec.Code)

			var snap domain.MetricsSnapshot
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
			require.Len(t, snap.Alerts, 1)
			assert.Equal(t, "x", snap.Alerts[0].Message)
			assert.WithinDuration(t, time.Now(), snap.Alerts[0].Timestamp, time.Minute)

			srv := httptest.NewServer(e)
			defer srv.Close()
			conn, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
			require.NoError(t, err)
			if resp != nil && resp.Body != nil {
				_ = resp.Body.Close()
			}
			defer conn.Close()

			ev := readEvent(t, conn)
			assert.Equal(t, domain.EventMetrics, ev.Type)
			assert.Equal(t, 1, b.Len())
		})
	}
}
