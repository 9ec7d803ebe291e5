package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"healthmonitor/internal/middleware"
	"healthmonitor/internal/middleware/mocks"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPath string
		wantCode int
	}{
		{"routed page", "/about", "/about", http.StatusOK},
		{"query string is stripped", "/?ref=x", "/", http.StatusOK},
		{"unrouted path still counted", "/missing", "/missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := mocks.NewMockRequestRecorder(t)
			recorder.EXPECT().RecordRequest(tt.wantPath).Return().Once()

			e := echo.New()
			e.Pre(middleware.RecordRequest(recorder))
			ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
			e.GET("/", ok)
			e.GET("/about", ok)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			resp := httptest.NewRecorder()
			e.ServeHTTP(resp, req)

			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
