package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type BlockChecker interface {
	IsBlocked(ip string) bool
}

var errForbidden = map[string]string{"error": "forbidden"}

func Blocklist(checker BlockChecker, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if checker.IsBlocked(ip) {
				logger.Debug("rejected blocked ip",
					slog.String("ip", ip),
					slog.String("path", c.Request().URL.Path),
				)
				return c.JSON(http.StatusForbidden, errForbidden)
			}
			return next(c)
		}
	}
}
