package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// Non-greedy so "<script>a</script>keep<script>b</script>" keeps the middle.
// An unterminated <script> is left as-is.
var scriptTagRe = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)

// StripScriptTags removes any <script>...</script> sequence from free-text input.
func StripScriptTags(s string) string {
	return scriptTagRe.ReplaceAllString(s, "")
}

// TrimToNil trims whitespace and maps empty strings to nil, so optional
// text columns store NULL instead of "".
func TrimToNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// CoerceQuantity parses a free-form quantity value. Anything unparseable or
// negative coerces to 0.
func CoerceQuantity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// FormatQuantity renders a quantity back into form text without a trailing
// ".0" for whole numbers.
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
