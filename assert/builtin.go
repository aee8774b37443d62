package assert

import (
	"math"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/kbukum/envkit/util"
)

// Real covers the numeric payload types produced by the numeric entry
// constructors.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Len asserts that the value's length is exactly n. It applies to any value
// with a length (strings, slices, maps); values without one are rejected.
func Len[T any](n int) Assertion[T] {
	return New(func(v T) bool {
		length, ok := util.Length(v)
		return ok && length == n
	}, map[string]any{"description": "Allowed length", "allowedLength": n})
}

// MinLen asserts that the value's length is at least n.
func MinLen[T any](n int) Assertion[T] {
	return New(func(v T) bool {
		length, ok := util.Length(v)
		return ok && length >= n
	}, map[string]any{"description": "Minimum length", "minimumLength": n})
}

// MaxLen asserts that the value's length is at most n.
func MaxLen[T any](n int) Assertion[T] {
	return New(func(v T) bool {
		length, ok := util.Length(v)
		return ok && length <= n
	}, map[string]any{"description": "Maximum length", "maximumLength": n})
}

// Prefix asserts that the value starts with the given prefix.
func Prefix(prefix string) Assertion[string] {
	return New(func(v string) bool {
		return strings.HasPrefix(v, prefix)
	}, map[string]any{"description": "Prefix", "prefix": prefix})
}

// Suffix asserts that the value ends with the given suffix.
func Suffix(suffix string) Assertion[string] {
	return New(func(v string) bool {
		return strings.HasSuffix(v, suffix)
	}, map[string]any{"description": "Suffix", "suffix": suffix})
}

// Substring asserts that the value contains the given substring.
func Substring(substring string) Assertion[string] {
	return New(func(v string) bool {
		return strings.Contains(v, substring)
	}, map[string]any{"description": "Substring", "substring": substring})
}

// Matches asserts that the value matches the given regular expression.
func Matches(rx *regexp.Regexp) Assertion[string] {
	return New(func(v string) bool {
		return rx.MatchString(v)
	}, map[string]any{"description": "Regular expression", "regex": rx.String()})
}

// Options asserts that the value is exactly one of the given options.
// Matching is case-sensitive exact string equality.
func Options(options ...string) Assertion[string] {
	return New(func(v string) bool {
		return util.StringInSlice(v, options)
	}, map[string]any{"description": "Allowed options", "options": options})
}

// IsURL asserts that the value parses as an absolute URL. If protocols are
// given, the parsed scheme must be one of them.
func IsURL(protocols ...string) Assertion[string] {
	accepted := make([]string, len(protocols))
	for i, p := range protocols {
		accepted[i] = strings.ToLower(p)
	}
	return New(func(v string) bool {
		u, err := url.Parse(v)
		if err != nil || !u.IsAbs() {
			return false
		}
		if len(accepted) == 0 {
			return true
		}
		return util.StringInSlice(strings.ToLower(u.Scheme), accepted)
	}, map[string]any{"description": "Valid URL", "acceptedProtocols": accepted})
}

// IsPort asserts that the value is an integer-valued number between 1 and
// 65535 inclusive.
func IsPort[T Real]() Assertion[T] {
	return New(func(v T) bool {
		f := float64(v)
		return f == math.Trunc(f) && f >= 1 && f <= 65535
	}, map[string]any{"description": "Valid port", "min": 1, "max": 65535})
}

// IsUUID asserts that the value is a valid non-nil UUID string.
func IsUUID() Assertion[string] {
	return New(func(v string) bool {
		parsed, err := uuid.Parse(v)
		return err == nil && parsed != uuid.Nil
	}, map[string]any{"description": "Valid UUID"})
}
