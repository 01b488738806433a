package audit

import "testing"

func TestParseOp(t *testing.T) {
	cases := []struct {
		op       string
		action   string
		resource string
	}{
		{"chat:send-message", "send_message", "chat"},
		{"auth:login", "login", "auth"},
		{"auth:get-session", "get_session", "auth"},
		{"team:create-team", "create_team", "team"},
		{"settings:update", "update", "settings"},
		{"documents:list", "list", "documents"},
	}
	for _, tc := range cases {
		got := ParseOp(tc.op)
		if got.Action != tc.action || got.Resource != tc.resource {
			t.Errorf("ParseOp(%q) = %+v, want {%s %s}", tc.op, got, tc.action, tc.resource)
		}
	}
}

func TestParseOpMalformed(t *testing.T) {
	for _, op := range []string{"", "login", ":login", "auth:"} {
		got := ParseOp(op)
		if got.Action != "unknown" || got.Resource != "unknown" {
			t.Errorf("ParseOp(%q) = %+v, want unknown/unknown", op, got)
		}
	}
}
