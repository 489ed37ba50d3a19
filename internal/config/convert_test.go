package config

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseInt32(t *testing.T) {
	t.Parallel()

	valid := map[string]int32{
		"42":          42,
		"-7":          -7,
		"+3":          3,
		"2147483647":  2147483647,
		"-2147483648": -2147483648,
		" 42":         42,
		"\t-5":        -5,
	}
	for raw, want := range valid {
		got, err := parseInt32(raw)
		if err != nil {
			t.Fatalf("parseInt32(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parseInt32(%q) = %d, want %d", raw, got, want)
		}
	}

	for _, raw := range []string{"42abc", "99999999999", "2147483648", "1.5", "0x10", "abc", "42 "} {
		if _, err := parseInt32(raw); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("parseInt32(%q) expected ErrInvalidValue, got %v", raw, err)
		}
	}
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	valid := map[string]float32{
		"1.5":  1.5,
		"1.5f": 1.5,
		"0.8":  0.8,
		"-2":   -2,
		"3f":   3,
		"1e-3": 0.001,
		" 2.5": 2.5,
	}
	for raw, want := range valid {
		got, err := parseFloat(raw)
		if err != nil {
			t.Fatalf("parseFloat(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parseFloat(%q) = %v, want %v", raw, got, want)
		}
	}

	for _, raw := range []string{"1.5x", "1.5ff", "f", "one"} {
		if _, err := parseFloat(raw); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("parseFloat(%q) expected ErrInvalidValue, got %v", raw, err)
		}
	}
}

func TestParseFloatOutOfRange(t *testing.T) {
	t.Parallel()

	tests := map[string]float64{
		"1e40":  math.Inf(1),
		"-1e40": math.Inf(-1),
		"1e40f": math.Inf(1),
		"1e-50": 0,
	}
	for raw, want := range tests {
		got, err := parseFloat(raw)
		if err != nil {
			t.Fatalf("parseFloat(%q) returned error: %v", raw, err)
		}
		if float64(got) != want {
			t.Fatalf("parseFloat(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"1":     true,
		"true":  true,
		"True":  true,
		"0":     false,
		"false": false,
		"False": false,
	}
	for raw, want := range tests {
		got, err := parseBool(raw)
		if err != nil {
			t.Fatalf("parseBool(%q) returned error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parseBool(%q) = %v, want %v", raw, got, want)
		}
	}

	for _, raw := range []string{"yes", "TRUE", "on", "2"} {
		if _, err := parseBool(raw); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("parseBool(%q) expected ErrInvalidValue, got %v", raw, err)
		}
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "Effects", raw: "{fxaa, cas, smaa}", want: []string{"fxaa", "cas", "smaa"}},
		{name: "EmptyItemSkipped", raw: "{ a ,  , b }", want: []string{"a", "b"}},
		{name: "DuplicatesKept", raw: "{x,x}", want: []string{"x", "x"}},
		{name: "TrailingComma", raw: "{a,,b,}", want: []string{"a", "b"}},
		{name: "SurroundingText", raw: "prefix {cas} suffix", want: []string{"cas"}},
		{name: "Empty", raw: "{}", want: []string{}},
		{name: "OnlyBlanks", raw: "{ ,\t, }", want: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseList(tc.raw)
			if err != nil {
				t.Fatalf("parseList(%q) returned error: %v", tc.raw, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("parseList(%q) mismatch (-want +got):\n%s", tc.raw, diff)
			}
		})
	}

	for _, raw := range []string{"{a, b", "a, b}", "}a{", "cas"} {
		if _, err := parseList(raw); !errors.Is(err, ErrInvalidValue) {
			t.Fatalf("parseList(%q) expected ErrInvalidValue, got %v", raw, err)
		}
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindString, KindInt32, KindFloat, KindBool, KindList} {
		got, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) returned error: %v", kind.String(), err)
		}
		if got != kind {
			t.Fatalf("ParseKind(%q) = %v, want %v", kind.String(), got, kind)
		}
	}

	if _, err := ParseKind("duration"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := convert("1", Kind(42)); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind for out-of-range kind, got %v", err)
	}
}
