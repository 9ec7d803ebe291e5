package handler

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
)

const closeGracePeriod = time.Second

// wsSink adapts a WebSocket connection to broadcast.Sink. Send is only ever
// called from the subscription's writer goroutine.
type wsSink struct {
	conn *websocket.Conn
}

func newWSSink(conn *websocket.Conn) *wsSink {
	return &wsSink{conn: conn}
}

func (s *wsSink) Send(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := s.conn.SetWriteDeadline(deadline); err != nil {
			return err
		}
	}
	// Cancellation interrupts a write that is blocked on a stalled peer.
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.NetConn().SetWriteDeadline(time.Now())
	})
	defer stop()

	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

func (s *wsSink) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
	return s.conn.Close()
}
