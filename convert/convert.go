package convert

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/envkit/errors"
)

// DefaultSeparator is the separator used by Array.
const DefaultSeparator = ","

var (
	trueLiterals  = map[string]bool{"true": true, "yes": true, "1": true, "on": true}
	falseLiterals = map[string]bool{"false": true, "no": true, "0": true, "off": true}
)

// Bool converts a raw string to a boolean. Matching is case-insensitive and
// ignores surrounding whitespace; the recognized literals are exactly
// true/yes/1/on and false/no/0/off. Anything else, including the empty
// string, fails.
func Bool(s string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if trueLiterals[normalized] {
		return true, nil
	}
	if falseLiterals[normalized] {
		return false, nil
	}
	return false, errors.Conversion(s, "boolean")
}

// Number converts a raw string to a float64. The empty string fails, and so
// does any input whose coercion yields NaN. Surrounding whitespace is
// tolerated by the coercion.
func Number(s string) (float64, error) {
	if s == "" {
		return 0, errors.Conversion(s, "number")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.Conversion(s, "number").WithCause(err)
	}
	if math.IsNaN(n) {
		return 0, errors.Conversion(s, "number")
	}
	return n, nil
}

// Array splits a raw string on the default comma separator and trims each
// segment. It never fails: input without a separator yields a one-element
// array, and a trailing separator legitimately yields a trailing
// empty-string element.
func Array(s string) ([]string, error) {
	return ArraySep(s, DefaultSeparator)
}

// ArraySep behaves like Array with an explicit single-character separator.
func ArraySep(s, sep string) ([]string, error) {
	if sep == "" {
		sep = DefaultSeparator
	}
	parts := strings.Split(s, sep)
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = strings.TrimSpace(part)
	}
	return out, nil
}

// Int converts a raw string to an int64 in base 10. The empty string and
// non-integer input fail. Surrounding whitespace is tolerated.
func Int(s string) (int64, error) {
	if s == "" {
		return 0, errors.Conversion(s, "integer")
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Conversion(s, "integer").WithCause(err)
	}
	return n, nil
}

// Duration converts a raw string to a time.Duration using Go duration
// syntax (e.g. "30s", "1h15m"). The empty string fails.
func Duration(s string) (time.Duration, error) {
	if s == "" {
		return 0, errors.Conversion(s, "duration")
	}
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Conversion(s, "duration").WithCause(err)
	}
	return d, nil
}

// URL converts a raw string to a parsed *url.URL. The input must be an
// absolute URL with a scheme.
func URL(s string) (*url.URL, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, errors.Conversion(s, "URL")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Conversion(s, "URL").WithCause(err)
	}
	if !u.IsAbs() {
		return nil, errors.Conversion(s, "URL")
	}
	return u, nil
}
