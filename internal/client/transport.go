package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"healthmonitor/internal/domain"
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type Conn interface {
	ReadMessage() (messageType int, data []byte, err error)
	Close() error
}

type Dialer interface {
	Dial(ctx context.Context) (Conn, error)
}

// Run opens the channel and feeds its messages into s until the channel
// fails or ctx is cancelled. Cancellation closes the connection and leaves
// the state untouched. Run does not reconnect; a failed dial is reported
// through the Offline state like any other channel failure.
func (s *Sync) Run(ctx context.Context, dialer Dialer) {
	conn, err := dialer.Dial(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.HandleError(ctx, err)
		}
		return
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	s.HandleOpen()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			switch {
			case ctx.Err() != nil:
			case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
				s.HandleClose(ctx)
			default:
				s.HandleError(ctx, err)
			}
			return
		}
		s.HandleMessage(data)
	}
}

type WebSocketDialer struct {
	url    string
	dialer *websocket.Dialer
}

func NewWebSocketDialer(url string, handshakeTimeout time.Duration) *WebSocketDialer {
	return &WebSocketDialer{
		url: url,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

func (d *WebSocketDialer) Dial(ctx context.Context) (Conn, error) {
	conn, resp, err := d.dialer.DialContext(ctx, d.url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", d.url, err)
	}
	return conn, nil
}

// HTTPFetcher polls GET /metrics on the monitor.
type HTTPFetcher struct {
	url    string
	client *http.Client
}

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		url:    strings.TrimSuffix(baseURL, "/") + "/metrics",
		client: &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) FetchSnapshot(ctx context.Context) (domain.MetricsSnapshot, error) {
	var snap domain.MetricsSnapshot

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return snap, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return snap, fmt.Errorf("failed to fetch metrics: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return snap, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return snap, fmt.Errorf("failed to decode metrics: %w", err)
	}
	return snap, nil
}
