// internal/interfaces/http/middleware/timeout.go
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// timeoutWriter guards the response against the handler goroutine writing
// after the deadline response has already been sent.
type timeoutWriter struct {
	gin.ResponseWriter
	mu       sync.Mutex
	timedOut bool
}

func (w *timeoutWriter) markTimedOut() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Written() {
		return false
	}
	w.timedOut = true
	return true
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Timeout middleware to prevent long-running requests. When the deadline
// passes before the handler finishes, the client gets a 408 and any later
// writes from the handler goroutine are discarded.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		tw := &timeoutWriter{ResponseWriter: c.Writer}
		c.Writer = tw

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			if tw.markTimedOut() {
				tw.ResponseWriter.Header().Set("Content-Type", "application/json; charset=utf-8")
				tw.ResponseWriter.WriteHeader(http.StatusRequestTimeout)
				tw.ResponseWriter.Write([]byte(`{"error":"Request timeout"}`))
			}
			<-done
		}
	}
}
