package httpapi

import "testing"

func TestToWebSocketURL(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"http://svc.internal:8000", "ws://svc.internal:8000"},
		{"https://svc.internal", "wss://svc.internal"},
		{"ws://svc.internal", "ws://svc.internal"},
		{"wss://svc.internal", "wss://svc.internal"},
	}
	for _, tc := range cases {
		if got := toWebSocketURL(tc.in); got != tc.want {
			t.Errorf("toWebSocketURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
