// Package telemetry carries a per-request trace ID through the context.
package telemetry

import (
	"context"

	"github.com/google/uuid"
)

type telKey int

const traceIDKey telKey = iota + 1

const noTrace = "00000000-0000-0000-0000-000000000000"

// Telemetry mints trace IDs and stores them on the request context.
type Telemetry struct{}

// NewTelemetry creates a new telemetry instance.
func NewTelemetry() Telemetry {
	return Telemetry{}
}

// SetTraceID attaches a fresh trace ID to the context.
func (t Telemetry) SetTraceID(ctx context.Context) context.Context {
	id, err := uuid.NewRandom()
	if err != nil {
		return context.WithValue(ctx, traceIDKey, noTrace)
	}
	return context.WithValue(ctx, traceIDKey, id.String())
}

// GetTraceID returns the trace ID from the context, or the zero trace ID when
// none has been set.
func (t Telemetry) GetTraceID(ctx context.Context) string {
	v, ok := ctx.Value(traceIDKey).(string)
	if !ok {
		return noTrace
	}
	return v
}
