package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/eshaffer321/monarch-mcp/pkg/monarch"
	"github.com/pkg/errors"
)

// Arguments are the decoded arguments of one tool call.
type Arguments map[string]any

// ParseArguments decodes the raw arguments of a call. Empty input and
// JSON null yield no arguments.
func ParseArguments(raw json.RawMessage) (Arguments, error) {
	args := Arguments{}
	if len(raw) == 0 || string(raw) == "null" {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, errors.Wrap(err, "arguments must be a JSON object")
	}
	if args == nil {
		args = Arguments{}
	}
	return args, nil
}

func (a Arguments) value(key string) (any, bool) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return v, true
}

// String returns the string argument key, or "" when absent.
func (a Arguments) String(key string) (string, error) {
	v, ok := a.value(key)
	if !ok {
		return "", nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", invalid(key, "must be a string", v)
	}
	return strings.TrimSpace(s), nil
}

// Text returns the string argument key unmodified, or "" when absent or
// blank.
func (a Arguments) Text(key string) (string, error) {
	v, ok := a.value(key)
	if !ok {
		return "", nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", invalid(key, "must be a string", v)
	}
	if strings.TrimSpace(s) == "" {
		return "", nil
	}
	return s, nil
}

// RequireString is String for a mandatory argument.
func (a Arguments) RequireString(key string) (string, error) {
	s, err := a.String(key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", missing(key)
	}
	return s, nil
}

// Int returns the integer argument key, or def when absent. Whole JSON
// numbers and numeric strings are accepted.
func (a Arguments) Int(key string, def int) (int, error) {
	v, ok := a.value(key)
	if !ok {
		return def, nil
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, invalid(key, "must be a whole number", v)
		}
		// Out of range values saturate so callers can still clamp them.
		switch {
		case n >= math.MaxInt:
			return math.MaxInt, nil
		case n <= math.MinInt:
			return math.MinInt, nil
		}
		return int(n), nil
	case json.Number:
		i, err := strconv.Atoi(n.String())
		if err != nil {
			return 0, invalid(key, "must be a whole number", v)
		}
		return i, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, invalid(key, "must be a whole number", v)
		}
		return i, nil
	default:
		return 0, invalid(key, "must be a whole number", v)
	}
}

// RequireInt is Int for a mandatory argument.
func (a Arguments) RequireInt(key string) (int, error) {
	if _, ok := a.value(key); !ok {
		return 0, missing(key)
	}
	return a.Int(key, 0)
}

// Float returns the numeric argument key, or nil when absent.
func (a Arguments) Float(key string) (*float64, error) {
	v, ok := a.value(key)
	if !ok {
		return nil, nil
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return nil, invalid(key, "must be a number", v)
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, invalid(key, "must be a number", v)
		}
		f = parsed
	default:
		return nil, invalid(key, "must be a number", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, invalid(key, "must be a finite number", v)
	}
	return &f, nil
}

// Date returns the YYYY-MM-DD argument key, or the zero time when absent.
func (a Arguments) Date(key string) (time.Time, error) {
	s, err := a.String(key)
	if err != nil || s == "" {
		return time.Time{}, err
	}
	t, err := time.Parse(monarch.DateLayout, s)
	if err != nil {
		return time.Time{}, invalid(key, "must be a date in YYYY-MM-DD format", s)
	}
	return t, nil
}

// RequireDate is Date for a mandatory argument.
func (a Arguments) RequireDate(key string) (time.Time, error) {
	t, err := a.Date(key)
	if err != nil {
		return time.Time{}, err
	}
	if t.IsZero() {
		return time.Time{}, missing(key)
	}
	return t, nil
}

func missing(key string) error {
	return &monarch.ValidationError{Field: key, Message: "is required"}
}

func invalid(key, message string, value any) error {
	return &monarch.ValidationError{Field: key, Message: message, Value: value}
}

// clampLimit applies the default to a non-positive limit and caps it at
// max when max is positive.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		limit = def
	}
	if max > 0 && limit > max {
		limit = max
	}
	return limit
}
