package httpapi

import "strings"

// toWebSocketURL rewrites an HTTP base URL into its WebSocket scheme.
// Non-HTTP schemes pass through unchanged.
func toWebSocketURL(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	default:
		return base
	}
}
