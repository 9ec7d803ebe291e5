package middleware

import (
	"github.com/labstack/echo/v4"
)

type RequestRecorder interface {
	RecordRequest(path string)
}

// RecordRequest counts every inbound request by its raw path. Register it
// with echo.Pre so unrouted requests and channel upgrades are counted too.
func RecordRequest(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			recorder.RecordRequest(c.Request().URL.Path)
			return next(c)
		}
	}
}
