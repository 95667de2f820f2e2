// Package redact strips sensitive values from strings before they are logged
// or placed in an error response. It covers the secrets the person directory
// handles: passwords, payment card numbers, email addresses and cookies.
package redact

import (
	"regexp"
	"sync"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedCardPlaceholder       = "[REDACTED_CARD]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

// Precompiled regex patterns
var (
	// Credentials in key=value, key: value or JSON form
	passwordRegex = regexp.MustCompile(
		`(?i)"?(password|passwd|pwd|secret)"?\s*[=:]\s*"?[^"&,\s}]{1,}"?`,
	)

	// Payment card numbers: 12-19 digits, optionally grouped by spaces or dashes
	cardRegex = regexp.MustCompile(`\b(?:\d[ -]?){11,18}\d\b`)

	// Email addresses
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Absolute file paths, e.g. multipart temp files
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	// Stack trace fragments
	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	// Ordered so that longer, more specific matches run first
	patterns = []*regexp.Regexp{
		stackTraceRegex, passwordRegex, emailRegex, cardRegex, unixPathRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		passwordRegex:   RedactedCredentialPlaceholder,
		cardRegex:       RedactedCardPlaceholder,
		emailRegex:      RedactedEmailPlaceholder,
		unixPathRegex:   RedactedPathPlaceholder,
		stackTraceRegex: "[STACK_TRACE_REDACTED]",
	}

	mu sync.RWMutex
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	mu.RLock()
	defer mu.RUnlock()

	result := input
	for _, pattern := range patterns {
		placeholder := RedactionPlaceholder
		if ph, ok := patternPlaceholders[pattern]; ok {
			placeholder = ph
		}
		result = pattern.ReplaceAllString(result, placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
