package spec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ToolArgs is the argument mapping the host validates against a tool's
// schema and passes to the handler. Accessors below implement the
// required-argument contract: absent or null required values return an
// error wrapping ErrInvalidArgument.
type ToolArgs map[string]any

// String returns a required string argument.
func (a ToolArgs) String(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidArgument, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidArgument, key)
	}
	return s, nil
}

// StringOr returns an optional string argument, or def when absent/empty.
func (a ToolArgs) StringOr(key, def string) string {
	s, ok := a[key].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// Int returns a required integer argument. JSON-decoded numbers arrive as
// float64; plain Go ints are accepted for direct invocation.
func (a ToolArgs) Int(key string) (int64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidArgument, key)
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArgument, key)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidArgument, key)
	}
}

// Bool returns an optional boolean argument; absent or non-bool is false.
func (a ToolArgs) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// StringSlice returns an optional list-of-strings argument. Both []string
// and JSON-decoded []any are accepted; non-string elements are skipped.
func (a ToolArgs) StringSlice(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
