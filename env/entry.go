package env

import (
	"strings"
	"time"

	"github.com/kbukum/envkit/assert"
	"github.com/kbukum/envkit/convert"
	"github.com/kbukum/envkit/errors"
)

// Required resolves a variable that must be set. A missing variable fails
// with MISSING_VARIABLE; a present value is trimmed and must be non-empty,
// so a blank value fails with FAILED_ASSERTION, never with missing.
func (e *Env) Required(key string) *Value[string] {
	effective := e.key(key)
	raw, ok := e.lookup(key)
	if !ok {
		return failedValue[string](effective, errors.Missing(effective))
	}
	return newValue(effective, raw).
		Transform(strings.TrimSpace).
		Assert(assert.MinLen[string](1))
}

// Optional resolves a variable with a fallback. An unset variable and an
// explicitly set empty value both use defaultValue; note the asymmetry with
// Required, where a blank value is present and fails validation. The chosen
// value is trimmed and must be non-empty, so an empty defaultValue still
// fails with FAILED_ASSERTION rather than silently returning "".
func (e *Env) Optional(key, defaultValue string) *Value[string] {
	effective := e.key(key)
	raw, ok := e.lookup(key)
	if !ok || raw == "" {
		raw = defaultValue
	}
	return newValue(effective, raw).
		Transform(strings.TrimSpace).
		Assert(assert.MinLen[string](1))
}

// Number resolves a numeric variable. A missing variable uses the default
// when given (already typed, no validation) and fails with MISSING_VARIABLE
// otherwise. A present value goes through the numeric converter, which
// rejects empty and non-numeric input. A present-but-invalid value never
// falls back to the default.
func (e *Env) Number(key string, defaultValue ...float64) *Value[float64] {
	return entry(e, key, convert.Number, defaultValue)
}

// Bool resolves a boolean variable. Symmetric to Number, using the boolean
// converter (true/yes/1/on, false/no/0/off, case-insensitive).
func (e *Env) Bool(key string, defaultValue ...bool) *Value[bool] {
	return entry(e, key, convert.Bool, defaultValue)
}

// Array resolves a separated-list variable. Symmetric to Number, splitting
// on the Env's array separator (default comma) and trimming each element.
func (e *Env) Array(key string, defaultValue ...[]string) *Value[[]string] {
	return entry(e, key, func(s string) ([]string, error) {
		return convert.ArraySep(s, e.arraySep)
	}, defaultValue)
}

// Int resolves a base-10 integer variable. Symmetric to Number.
func (e *Env) Int(key string, defaultValue ...int64) *Value[int64] {
	return entry(e, key, convert.Int, defaultValue)
}

// Duration resolves a Go duration variable (e.g. "30s"). Symmetric to Number.
func (e *Env) Duration(key string, defaultValue ...time.Duration) *Value[time.Duration] {
	return entry(e, key, convert.Duration, defaultValue)
}

// entry implements the shared state machine of the typed constructors:
// missing with default is defaulted, missing without default is fatal, and
// a present value is always handed to the converter.
func entry[T any](e *Env, key string, fn func(string) (T, error), defaultValue []T) *Value[T] {
	effective := e.key(key)
	raw, ok := e.lookup(key)
	if !ok {
		if len(defaultValue) > 0 {
			return newValue(effective, defaultValue[0])
		}
		return failedValue[T](effective, errors.Missing(effective))
	}
	val, err := fn(raw)
	if err != nil {
		return failedValue[T](effective, annotateKey(err, effective))
	}
	return newValue(effective, val)
}

// --- Package-level entry constructors over the process environment ---

// Required resolves a variable that must be set. See Env.Required.
func Required(key string) *Value[string] { return defaultEnv.Required(key) }

// Optional resolves a variable with a fallback. See Env.Optional.
func Optional(key, defaultValue string) *Value[string] {
	return defaultEnv.Optional(key, defaultValue)
}

// Number resolves a numeric variable. See Env.Number.
func Number(key string, defaultValue ...float64) *Value[float64] {
	return defaultEnv.Number(key, defaultValue...)
}

// Bool resolves a boolean variable. See Env.Bool.
func Bool(key string, defaultValue ...bool) *Value[bool] {
	return defaultEnv.Bool(key, defaultValue...)
}

// Array resolves a separated-list variable. See Env.Array.
func Array(key string, defaultValue ...[]string) *Value[[]string] {
	return defaultEnv.Array(key, defaultValue...)
}

// Int resolves a base-10 integer variable. See Env.Int.
func Int(key string, defaultValue ...int64) *Value[int64] {
	return defaultEnv.Int(key, defaultValue...)
}

// Duration resolves a Go duration variable. See Env.Duration.
func Duration(key string, defaultValue ...time.Duration) *Value[time.Duration] {
	return defaultEnv.Duration(key, defaultValue...)
}
