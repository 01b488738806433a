package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
)

// HandlerFunc handles one operation: args is the request's raw JSON payload,
// the return value is marshalled into the envelope's data field. Returning a
// *Error surfaces that code to the UI; any other error is mapped to
// CodeOperationFailed.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (any, error)

// Interceptor wraps operation dispatch, in the manner of a gRPC unary
// interceptor: it may short-circuit (auth, policy) or observe (audit,
// telemetry) before delegating to next.
type Interceptor func(ctx context.Context, op string, args json.RawMessage, next HandlerFunc) (any, error)

// Router is the single point of entry for every request the UI can make of
// the host. The registry is closed: operation names not registered at startup
// are rejected before any handler or interceptor runs.
type Router struct {
	handlers     map[string]HandlerFunc
	interceptors []Interceptor
}

// NewRouter returns a Router that runs the given interceptors, outermost
// first, around every dispatched operation.
func NewRouter(interceptors ...Interceptor) *Router {
	return &Router{
		handlers:     make(map[string]HandlerFunc),
		interceptors: interceptors,
	}
}

// Handle registers a handler for op. Registration happens once at startup;
// a duplicate registration is a programming error and panics.
func (r *Router) Handle(op string, h HandlerFunc) {
	if op == "" || h == nil {
		panic("bridge: Handle requires an operation name and handler")
	}
	if _, exists := r.handlers[op]; exists {
		panic(fmt.Sprintf("bridge: duplicate handler for operation %q", op))
	}
	r.handlers[op] = h
}

// Ops returns the sorted list of registered operation names.
func (r *Router) Ops() []string {
	ops := make([]string, 0, len(r.handlers))
	for op := range r.handlers {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Dispatch routes one request to its handler through the interceptor chain
// and always returns a well-formed envelope. Unknown operations are rejected
// outright; no interceptor or handler observes them.
func (r *Router) Dispatch(ctx context.Context, op string, args json.RawMessage) Envelope {
	start := time.Now()
	meta := &Metadata{
		Timestamp: start.UnixMilli(),
		RequestID: uuid.New().String(),
	}

	handler, ok := r.handlers[op]
	if !ok {
		meta.Duration = time.Since(start).Milliseconds()
		return Envelope{
			Success:  false,
			Error:    NewError(CodeUnknownOperation, fmt.Sprintf("unknown operation %q", op)),
			Metadata: meta,
		}
	}

	chained := handler
	for i := len(r.interceptors) - 1; i >= 0; i-- {
		ic := r.interceptors[i]
		next := chained
		chained = func(ctx context.Context, args json.RawMessage) (any, error) {
			return ic(ctx, op, args, next)
		}
	}

	data, err := chained(ctx, args)
	meta.Duration = time.Since(start).Milliseconds()
	if err != nil {
		return Envelope{Success: false, Error: toEnvelopeError(op, err), Metadata: meta}
	}
	return Envelope{Success: true, Data: data, Metadata: meta}
}

// toEnvelopeError keeps domain errors and hides everything else. Full detail
// stays in the host log; the UI gets a stable code and a generic message.
func toEnvelopeError(op string, err error) *Error {
	var be *Error
	if errors.As(err, &be) {
		return be
	}
	log.Printf("bridge: operation %s failed: %v", op, err)
	return NewError(CodeOperationFailed, "The operation could not be completed. Please try again.")
}
