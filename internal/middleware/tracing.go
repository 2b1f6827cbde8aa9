package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	traceHeader = "X-Trace-Id"
	traceLocal  = "trace_id"
)

// Tracing assigns every request a fresh trace ID, stored in Locals and
// echoed in the response header so log lines and client reports can be
// correlated.
func Tracing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.New().String()
		c.Locals(traceLocal, id)
		c.Set(traceHeader, id)
		return c.Next()
	}
}

// GetTraceID reads the trace ID set by Tracing. Empty outside the
// middleware chain.
func GetTraceID(c *fiber.Ctx) string {
	if id, ok := c.Locals(traceLocal).(string); ok {
		return id
	}
	return ""
}
