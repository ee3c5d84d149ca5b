package jwt

import "time"

// getPayload extracts payload from token claims
func getPayload(claims map[string]any) (map[string]any, bool) {
	payload, ok := claims["payload"].(map[string]any)
	return payload, ok
}

// getString safely extracts string value from a claims map
func getString(m map[string]any, key string) string {
	if val, ok := m[key].(string); ok {
		return val
	}
	return ""
}

// GetUserIDFromToken gets the user ID from the token
func GetUserIDFromToken(claims map[string]any) string {
	if payload, ok := getPayload(claims); ok {
		return getString(payload, "user_id")
	}
	return ""
}

// GetTokenIDFromToken extracts JWT ID (jti) from token claims
func GetTokenIDFromToken(claims map[string]any) string {
	return getString(claims, "jti")
}

// GetSubjectFromToken extracts subject (sub) from token claims
func GetSubjectFromToken(claims map[string]any) string {
	return getString(claims, "sub")
}

// IsAccessToken reports whether claims belong to an access token.
func IsAccessToken(claims map[string]any) bool {
	return GetSubjectFromToken(claims) == SubjectAccess
}

// GetExpirationFromToken extracts expiration time from token claims
func GetExpirationFromToken(claims map[string]any) time.Time {
	switch exp := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0)
	case int64:
		return time.Unix(exp, 0)
	}
	return time.Time{}
}
