package flags

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrInvalidSyntax = errors.New("invalid syntax")
	ErrUnknownFlag   = errors.New("unknown flag")
)

// Flags maps flag names (without the leading dash) to their raw values.
type Flags map[string]string

// Parse reads "-key value" pairs from raw. Keys outside allowed are rejected.
// A repeated key keeps its last value.
func Parse(raw string, allowed ...string) (Flags, error) {
	f := make(Flags)
	tokens := strings.Fields(raw)

	for i := 0; i < len(tokens); i += 2 {
		key := strings.TrimLeft(tokens[i], "-")
		if !strings.HasPrefix(tokens[i], "-") || key == "" {
			return nil, errors.Wrapf(ErrInvalidSyntax, "value %q given without a flag", tokens[i])
		}
		if i+1 >= len(tokens) {
			return nil, errors.Wrapf(ErrInvalidSyntax, "flag -%s given without a value", key)
		}
		if !lo.Contains(allowed, key) {
			return nil, errors.Wrapf(ErrUnknownFlag, "-%s (allowed: %s)", key, strings.Join(allowed, ", "))
		}
		f[key] = tokens[i+1]
	}

	return f, nil
}

func (f Flags) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// String returns the value of key, or def when absent.
func (f Flags) String(key, def string) string {
	if v, ok := f[key]; ok {
		return v
	}
	return def
}

// Int returns the integer value of key, or def when absent.
func (f Flags) Int(key string, def int) (int, error) {
	v, ok := f[key]
	if !ok {
		return def, nil
	}
	return strconv.Atoi(v)
}

// Bool returns the boolean value of key, or def when absent.
func (f Flags) Bool(key string, def bool) (bool, error) {
	v, ok := f[key]
	if !ok {
		return def, nil
	}
	return strconv.ParseBool(v)
}

// SplitChain breaks text into effect commands separated by ';' or newlines.
func SplitChain(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == '\n'
	})

	return lo.Filter(
		lo.Map(parts, func(s string, _ int) string { return strings.TrimSpace(s) }),
		func(s string, _ int) bool { return s != "" },
	)
}
