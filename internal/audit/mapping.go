package audit

import "strings"

// ActionResource holds action and resource derived from a bridge operation name.
type ActionResource struct {
	Action   string
	Resource string
}

// ParseOp returns action and resource for a bridge operation name
// (e.g. "chat:send-message" audits as action "send_message" on resource
// "chat"). Malformed names map to "unknown".
func ParseOp(op string) ActionResource {
	colon := strings.Index(op, ":")
	if colon <= 0 || colon == len(op)-1 {
		return ActionResource{Action: "unknown", Resource: "unknown"}
	}
	resource := op[:colon]
	action := strings.ReplaceAll(op[colon+1:], "-", "_")
	return ActionResource{Action: action, Resource: resource}
}
