package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the conversion applied to a raw option value.
type Kind int

// Supported kinds. KindInt32 values are int32, KindFloat values float32.
const (
	KindString Kind = iota
	KindInt32
	KindFloat
	KindBool
	KindList
)

var kindNames = map[Kind]string{
	KindString: "string",
	KindInt32:  "int",
	KindFloat:  "float",
	KindBool:   "bool",
	KindList:   "list",
}

// String returns the name accepted by ParseKind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kind name such as "int" or "list" to its Kind.
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// convert applies the conversion selected by kind.
func convert(raw string, kind Kind) (any, error) {
	switch kind {
	case KindString:
		return raw, nil
	case KindInt32:
		return parseInt32(raw)
	case KindFloat:
		return parseFloat(raw)
	case KindBool:
		return parseBool(raw)
	case KindList:
		return parseList(raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// leadingSpace is skipped before numeric conversion; trailing space is not.
const leadingSpace = " \t\n\r\v\f"

func parseInt32(raw string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimLeft(raw, leadingSpace), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a 32-bit integer", ErrInvalidValue, raw)
	}
	return int32(v), nil
}

// parseFloat accepts a float literal optionally followed by a single 'f'.
// Values beyond the float32 range convert to ±Inf.
func parseFloat(raw string) (float32, error) {
	literal := strings.TrimLeft(raw, leadingSpace)
	v, err := parseFloat32(literal)
	if err != nil {
		if trimmed, found := strings.CutSuffix(literal, "f"); found {
			v, err = parseFloat32(trimmed)
		}
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a float", ErrInvalidValue, raw)
	}
	return float32(v), nil
}

func parseFloat32(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 32)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

func parseBool(raw string) (bool, error) {
	switch raw {
	case "1", "true", "True":
		return true, nil
	case "0", "false", "False":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not a bool", ErrInvalidValue, raw)
}

// parseList reads a `{a, b, c}` literal. Items are trimmed and empty items
// are dropped; order and duplicates are kept.
func parseList(raw string) ([]string, error) {
	open := strings.IndexByte(raw, '{')
	end := strings.IndexByte(raw, '}')
	if open < 0 || end < 0 || open >= end {
		return nil, fmt.Errorf("%w: %q is not a {...} list", ErrInvalidValue, raw)
	}

	items := []string{}
	for _, item := range strings.Split(raw[open+1:end], ",") {
		item = strings.Trim(item, " \t\n\r")
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
