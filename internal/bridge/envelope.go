// Package bridge implements the command router and the message-passing
// server between the sandboxed UI process and the privileged host process.
// Every UI request passes through a closed registry of named operations and
// comes back as a uniform envelope; server-initiated events flow over a
// separate closed set of push channels.
package bridge

// Error is a caller-visible operation failure with a stable code. Handlers
// return *Error for domain failures; any other error is mapped by the router
// to CodeOperationFailed with a generic message so infrastructure detail
// never crosses the bridge.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

// NewError returns an operation error with the given stable code and
// user-presentable message.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Router-level error codes. Operation handlers define their own domain codes
// (e.g. INVALID_CREDENTIALS) on top of these.
const (
	CodeUnknownOperation = "UNKNOWN_OPERATION"
	CodeUnauthenticated  = "UNAUTHENTICATED"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeOperationFailed  = "OPERATION_FAILED"
)

// Metadata carries per-request bookkeeping in the envelope.
type Metadata struct {
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	RequestID string `json:"requestId"`
	Duration  int64  `json:"duration"` // milliseconds
}

// Envelope is the only response shape the UI ever sees. Transport failures
// and domain failures differ by Success and Error.Code, never by shape.
type Envelope struct {
	Success  bool      `json:"success"`
	Data     any       `json:"data,omitempty"`
	Error    *Error    `json:"error,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}
