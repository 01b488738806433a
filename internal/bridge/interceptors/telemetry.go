package interceptors

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"smartlink/host/internal/bridge"
	"smartlink/host/internal/telemetry"
	"smartlink/host/internal/telemetry/domain"
)

// bridgeRequestMetadata is the JSON shape stored in Event.Metadata for bridge_request events.
type bridgeRequestMetadata struct {
	Op         string `json:"op"`
	Outcome    string `json:"outcome"`
	ErrorCode  string `json:"error_code,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// Telemetry returns an interceptor that traces each operation, records
// request count and latency, and emits a telemetry event after each
// request. Best-effort: emit failures are logged and do not fail the
// request. If emitter is nil, events are not emitted but spans and
// metrics are still recorded. skipOps is the set of operation names to
// not emit events for (e.g. system:get-status polling).
func Telemetry(emitter telemetry.EventEmitter, skipOps map[string]bool) bridge.Interceptor {
	tracer := otel.Tracer("smartlink.bridge")
	meter := otel.Meter("smartlink.bridge")

	requests, _ := meter.Int64Counter("bridge.requests",
		metric.WithDescription("Bridge requests handled, by operation and outcome."))
	latency, _ := meter.Float64Histogram("bridge.request.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("Bridge request latency in milliseconds."))

	return func(ctx context.Context, op string, args json.RawMessage, next bridge.HandlerFunc) (any, error) {
		start := time.Now()
		ctx, span := tracer.Start(ctx, op, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		data, err := next(ctx, args)

		elapsed := time.Since(start)
		outcome := "ok"
		errorCode := ""
		if err != nil {
			outcome = "error"
			var be *bridge.Error
			if errors.As(err, &be) {
				errorCode = be.Code
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		attrs := []attribute.KeyValue{
			attribute.String("bridge.op", op),
			attribute.String("bridge.outcome", outcome),
		}
		if errorCode != "" {
			attrs = append(attrs, attribute.String("bridge.error_code", errorCode))
		}
		span.SetAttributes(attrs...)
		requests.Add(ctx, 1, metric.WithAttributes(attrs...))
		latency.Record(ctx, float64(elapsed.Microseconds())/1000.0, metric.WithAttributes(attrs...))

		if emitter == nil || skipOps[op] {
			return data, err
		}
		meta := bridgeRequestMetadata{
			Op:         op,
			Outcome:    outcome,
			ErrorCode:  errorCode,
			DurationMs: elapsed.Milliseconds(),
		}
		metaJSON, _ := json.Marshal(meta)
		telemetry.EmitAsync(emitter, ctx, &domain.Event{
			UserID:    bridge.UserID(ctx),
			EventType: "bridge_request",
			Source:    "bridge_interceptor",
			Metadata:  metaJSON,
			CreatedAt: time.Now().UTC(),
		})
		return data, err
	}
}
