package security

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"
)

// GenerateRequestID generates a random identifier for tracing rejected requests
func GenerateRequestID() (string, error) {
	b := make([]byte, 16)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// ValidateContentType ensures a mutating request carries an expected body type
func ValidateContentType(contentType string) bool {
	// Strip parameters such as the multipart boundary or charset
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))

	validTypes := map[string]bool{
		"application/json":                  true,
		"application/x-www-form-urlencoded": true,
		"multipart/form-data":               true,
	}
	return validTypes[contentType]
}

// SanitizeHeaders removes sensitive headers before a request is logged
func SanitizeHeaders(headers http.Header) http.Header {
	sanitized := headers.Clone()
	sensitiveHeaders := []string{
		"Authorization",
		"Cookie",
		"Set-Cookie",
		"X-CSRF-Token",
	}

	for _, header := range sensitiveHeaders {
		sanitized.Del(header)
	}
	return sanitized
}
