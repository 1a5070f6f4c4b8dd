package spec

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestToolArgs_String(t *testing.T) {
	t.Parallel()

	a := ToolArgs{"name": "Frodo", "blank": "   ", "num": 3}

	if got, err := a.String("name"); err != nil || got != "Frodo" {
		t.Fatalf("String(name)=%q,%v", got, err)
	}
	for _, key := range []string{"missing", "blank", "num"} {
		if _, err := a.String(key); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("String(%s): want ErrInvalidArgument, got %v", key, err)
		}
	}
	if got := a.StringOr("missing", "World"); got != "World" {
		t.Fatalf("StringOr default=%q", got)
	}
}

func TestToolArgs_Int(t *testing.T) {
	t.Parallel()

	a := ToolArgs{
		"i":    7,
		"i64":  int64(8),
		"f":    float64(9),
		"jn":   json.Number("10"),
		"bad":  "eleven",
		"null": nil,
	}

	for key, want := range map[string]int64{"i": 7, "i64": 8, "f": 9, "jn": 10} {
		got, err := a.Int(key)
		if err != nil || got != want {
			t.Fatalf("Int(%s)=%d,%v want %d", key, got, err, want)
		}
	}
	for _, key := range []string{"bad", "null", "missing"} {
		if _, err := a.Int(key); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Int(%s): want ErrInvalidArgument, got %v", key, err)
		}
	}
}

func TestToolArgs_StringSliceAndBool(t *testing.T) {
	t.Parallel()

	a := ToolArgs{
		"typed":   []string{"character", "location"},
		"decoded": []any{"rule", 5, "", "item"},
		"flag":    true,
	}

	if got := a.StringSlice("typed"); len(got) != 2 || got[0] != "character" {
		t.Fatalf("StringSlice(typed)=%v", got)
	}
	if got := a.StringSlice("decoded"); len(got) != 2 || got[0] != "rule" || got[1] != "item" {
		t.Fatalf("StringSlice(decoded)=%v", got)
	}
	if got := a.StringSlice("missing"); got != nil {
		t.Fatalf("StringSlice(missing)=%v", got)
	}
	if !a.Bool("flag") || a.Bool("missing") {
		t.Fatalf("Bool accessors wrong: %v %v", a.Bool("flag"), a.Bool("missing"))
	}
}
