package twitter

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

// GenerateCT0 generates a random 32-byte hex string for use as a ct0 CSRF token.
func GenerateCT0() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "0000000000000000000000000000000000000000000000000000000000000000"
	}
	return hex.EncodeToString(b)
}

// ct0MaxAge is the maximum age of a ct0 token before proactive rotation.
const ct0MaxAge = 4 * time.Hour

// extractCT0FromHeaders parses the ct0 value from set-cookie response headers.
// Multiple cookies may be folded into one comma-separated value.
func extractCT0FromHeaders(headers map[string]string) string {
	cookie := headers["set-cookie"]
	if cookie == "" {
		return ""
	}
	parts := strings.FieldsFunc(cookie, func(r rune) bool { return r == ';' || r == ',' })
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "ct0=") {
			if val := strings.TrimPrefix(part, "ct0="); val != "" {
				return val
			}
		}
	}
	return ""
}
