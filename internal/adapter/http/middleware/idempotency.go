package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ticket-store-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderIdempotencyKey carries the client-chosen retry key for commands.
const HeaderIdempotencyKey = "X-Idempotency-Key"

const idempotencyTTL = 24 * time.Hour

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays cached responses for retried commands. The key is
// scoped by the authenticated caller, so two callers cannot collide. Only
// successful (2xx) responses are cached: a rejected command may legitimately
// succeed on retry.
func Idempotency(cache ports.IdempotencyCache, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" {
			c.Next()
			return
		}
		caller, ok := Caller(c)
		if !ok {
			c.Next()
			return
		}
		cacheKey := fmt.Sprintf("%s:%s", caller, key)

		cached, err := cache.Get(c.Request.Context(), cacheKey)
		if err != nil {
			log.Warn().Err(err).Msg("idempotency cache read failed, executing request (degraded mode)")
		} else if cached != nil {
			var resp cachedResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				c.Header("X-Idempotency-Replay", "true")
				c.Data(resp.Status, "application/json; charset=utf-8", resp.Body)
				c.Abort()
				return
			}
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		payload, err := json.Marshal(cachedResponse{Status: status, Body: writer.buf.Bytes()})
		if err != nil {
			return
		}
		if err := cache.Set(c.Request.Context(), cacheKey, payload, idempotencyTTL); err != nil {
			log.Warn().Err(err).Msg("idempotency cache write failed")
		}
	}
}
