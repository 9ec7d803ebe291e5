package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"healthmonitor/internal/domain"
	"healthmonitor/internal/validation"
)

const maxInboundMessageSize = 4096

var (
	errInvalidBody = map[string]string{"error": "invalid request body"}
	respAck        = domain.AckResponse{Success: true}
)

type Handler struct {
	svc      MonitorService
	hub      Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
	now      func() time.Time
}

func New(svc MonitorService, hub Hub, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Dashboards are unauthenticated and may be served from any origin.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		now: time.Now,
	}
}

func (h *Handler) Register(e *echo.Echo, channelPath string) {
	e.GET("/health", h.Health)
	e.GET("/metrics", h.Metrics)
	e.POST("/api/theme", h.Theme)
	e.POST("/api/alert", h.Alert)
	e.GET(channelPath, h.Subscribe)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Health())
}

func (h *Handler) Metrics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Snapshot())
}

// Theme records a theme switch. Unknown or missing themes are ignored and
// still acknowledged.
func (h *Handler) Theme(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return h.bodyError(c, err)
	}

	theme := validation.ThemeFromBody(body)
	if err := h.svc.ChangeTheme(theme); err != nil {
		h.logger.Debug("ignored theme change",
			slog.String("theme", theme),
			slog.String("error", err.Error()),
		)
	}
	return c.JSON(http.StatusOK, respAck)
}

// Alert accepts any alert-shaped body. Unusable fields are replaced by
// defaults and the alert is always stored.
func (h *Handler) Alert(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return h.bodyError(c, err)
	}

	alert, errs := validation.ParseAlert(body, h.now())
	if len(errs) > 0 {
		h.logger.Debug("alert fields defaulted", slog.String("error", errors.Join(errs...).Error()))
	}
	h.svc.SubmitAlert(alert)
	return c.JSON(http.StatusOK, respAck)
}

// Subscribe upgrades the request to a WebSocket and streams broadcast events
// until either side goes away. Inbound frames are read only to detect the
// close.
func (h *Handler) Subscribe(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed",
			slog.String("ip", c.RealIP()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	sub := h.hub.Subscribe(newWSSink(conn))
	defer sub.Close()

	conn.SetReadLimit(maxInboundMessageSize)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				h.logger.Debug("websocket read failed",
					slog.String("subscriber", sub.ID()),
					slog.String("error", err.Error()),
				)
			}
			return nil
		}
	}
}

func (h *Handler) bodyError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return err
	}
	h.logger.Error("failed to read request body", slog.String("error", err.Error()))
	return c.JSON(http.StatusBadRequest, errInvalidBody)
}
