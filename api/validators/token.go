package validators

import "strings"

// BearerToken extracts the token from an Authorization header value.
// Returns the empty string when no bearer token is present.
func BearerToken(header string) string {
	token := strings.TrimSpace(header)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return ""
}
