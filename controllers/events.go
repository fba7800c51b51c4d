package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GET /api/events
// Server-sent event stream of store changes. Each observer holds one
// broadcaster subscription for the lifetime of the connection; the
// subscription is released when the client goes away, so repeated
// connect/disconnect cycles leak nothing.
func StreamEvents(c *gin.Context) {
	s, ok := StoreInstance(c)
	if !ok {
		return
	}

	flusher, canFlush := c.Writer.(http.Flusher)
	if !canFlush {
		RespondError(c, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	changes, cancel := s.Broadcaster().Subscribe()
	defer cancel()

	header := c.Writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": ping\n\n")
			flusher.Flush()
		case change, chOpen := <-changes:
			if !chOpen {
				return
			}
			raw, err := json.Marshal(change)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: change\ndata: %s\n\n", raw)
			flusher.Flush()
		}
	}
}
