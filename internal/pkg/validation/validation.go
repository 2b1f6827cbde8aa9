// Package validation holds the request-shape helpers shared by the handler
// packages: strict field sets, required/optional string extraction, numeric
// coercion, and the date formats accepted on input.
package validation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FirstUnknownField returns the alphabetically first body key outside the
// allowed set, or "" when the body is clean. Sorting keeps the reported
// field deterministic.
func FirstUnknownField(body map[string]interface{}, allowed map[string]bool) string {
	unknown := make([]string, 0)
	for k := range body {
		if !allowed[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return ""
	}
	sort.Strings(unknown)
	return unknown[0]
}

// RequiredString extracts a mandatory non-empty string field. The second
// return value is the validation message, "" on success.
func RequiredString(body map[string]interface{}, field string) (string, string) {
	v, exists := body[field]
	if !exists || v == nil {
		return "", fmt.Sprintf("%q is required", field)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Sprintf("%q must be a string", field)
	}
	if s == "" {
		return "", fmt.Sprintf("%q is not allowed to be empty", field)
	}
	return s, ""
}

// OptionalString extracts an optional string field; absent, null and ""
// all normalize to nil.
func OptionalString(body map[string]interface{}, field string) (*string, string) {
	v, exists := body[field]
	if !exists || v == nil {
		return nil, ""
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Sprintf("%q must be a string", field)
	}
	if s == "" {
		return nil, ""
	}
	return &s, ""
}

// ToNumber coerces a decoded JSON value to float64 the way Number() would:
// numbers pass through, numeric strings parse, anything else fails.
func ToNumber(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses a date token in any accepted layout, normalized to UTC.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
