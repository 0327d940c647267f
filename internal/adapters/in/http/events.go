package http

import (
	"fmt"
	"net/http"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// DefaultHeartbeat is how often an idle event stream sends a comment line.
const DefaultHeartbeat = 15 * time.Second

// StreamOrderEvents handles GET /api/v1/orders/{orderId}/events. It streams the
// events published on the order's topic as server-sent events until the client
// disconnects. Only events published after the stream opens are delivered.
func (s *Server) StreamOrderEvents(ctx echo.Context, orderId string) error {
	reqCtx := ctx.Request().Context()

	o, err := s.resolveOrder(reqCtx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	topic := order.Topic(o)
	messages, err := s.events.Subscribe(reqCtx, topic)
	if err != nil {
		return s.fail(ctx, err)
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	s.logger.DebugContext(reqCtx, "Event stream opened", "topic", topic)
	defer s.logger.DebugContext(reqCtx, "Event stream closed", "topic", topic)

	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			if _, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", msg.Name, msg.Data); err != nil {
				return nil
			}
			res.Flush()
		case <-heartbeat.C:
			if _, err = fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
