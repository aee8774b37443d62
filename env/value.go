package env

import (
	"fmt"

	"github.com/kbukum/envkit/assert"
	"github.com/kbukum/envkit/errors"
)

// Value threads a single named environment value through a chain of
// transforms, assertions, and conversions. The key is fixed at construction
// and used only for diagnostics; the payload type changes only via Convert.
//
// Steps execute eagerly in call order. Once a step fails, the error sticks
// and every later step is a no-op, so a partially-applied chain is never
// observable. A chain is owned by a single goroutine.
type Value[T any] struct {
	key string
	val T
	err error
}

func newValue[T any](key string, val T) *Value[T] {
	return &Value[T]{key: key, val: val}
}

func failedValue[T any](key string, err error) *Value[T] {
	return &Value[T]{key: key, err: err}
}

// Key returns the effective lookup key this chain was constructed for.
func (v *Value[T]) Key() string { return v.key }

// Err returns the first error recorded on the chain, or nil.
func (v *Value[T]) Err() error { return v.err }

// Transform replaces the payload with fn(payload). No validation is
// performed; a panicking fn propagates unmodified.
func (v *Value[T]) Transform(fn func(T) T) *Value[T] {
	if v.err != nil {
		return v
	}
	v.val = fn(v.val)
	return v
}

// TransformErr replaces the payload with the result of fn. A returned error
// fails the chain with code FAILED_TRANSFORM; an *errors.EnvError returned
// by fn is kept as-is so callers can raise structured failures directly.
func (v *Value[T]) TransformErr(fn func(T) (T, error)) *Value[T] {
	if v.err != nil {
		return v
	}
	out, err := fn(v.val)
	if err != nil {
		v.err = annotateKey(asEnvError(v.key, err), v.key)
		return v
	}
	v.val = out
	return v
}

// Assert evaluates the assertion's predicate against the payload. On
// rejection the chain fails with code FAILED_ASSERTION, carrying the
// assertion's context, the optional caller message under "userMessage", and
// the failing key and value (which always overwrite same-named context
// fields).
func (v *Value[T]) Assert(a assert.Assertion[T], message ...string) *Value[T] {
	if v.err != nil {
		return v
	}
	if a.Check(v.val) {
		return v
	}
	v.err = errors.Assertion(v.key, v.val, mergeContext(a.Context, message))
	return v
}

// Narrow behaves like Assert with a plain predicate and a fixed default
// description. In a language with refinement types this step would also
// narrow the payload's static type; at runtime it is an assertion.
func (v *Value[T]) Narrow(predicate func(T) bool, message ...string) *Value[T] {
	if v.err != nil {
		return v
	}
	if predicate(v.val) {
		return v
	}
	context := map[string]any{"description": "Failed type-narrowing"}
	v.err = errors.Assertion(v.key, v.val, mergeContext(context, message))
	return v
}

// Finalize ends the chain, returning the payload or the first recorded
// error. No validation is performed.
func (v *Value[T]) Finalize() (T, error) {
	if v.err != nil {
		var zero T
		return zero, v.err
	}
	return v.val, nil
}

// MustFinalize is Finalize for startup paths where a bad environment should
// abort the process. It panics on error.
func (v *Value[T]) MustFinalize() T {
	val, err := v.Finalize()
	if err != nil {
		panic(fmt.Sprintf("env: %v", err))
	}
	return val
}

// Convert applies fn to the payload and starts a chain of the output type
// under the same key. Convert performs no validation of its own: the
// conversion function decides what is representable and returns the error
// that fails the chain.
func Convert[I, O any](v *Value[I], fn func(I) (O, error)) *Value[O] {
	if v.err != nil {
		return failedValue[O](v.key, v.err)
	}
	out, err := fn(v.val)
	if err != nil {
		return failedValue[O](v.key, annotateKey(err, v.key))
	}
	return newValue(v.key, out)
}

// mergeContext copies the assertion context and appends the optional caller
// message under "userMessage". The input map stays untouched.
func mergeContext(context map[string]any, message []string) map[string]any {
	merged := make(map[string]any, len(context)+1)
	for k, val := range context {
		merged[k] = val
	}
	if len(message) > 0 && message[0] != "" {
		merged["userMessage"] = message[0]
	}
	return merged
}

// annotateKey stamps the chain's key onto a structured error that does not
// carry one yet. Errors from other chains keep their own key.
func annotateKey(err error, key string) error {
	if envErr, ok := err.(*errors.EnvError); ok && envErr.Key == "" {
		return envErr.WithKey(key)
	}
	return err
}

// asEnvError wraps a plain transform error into the taxonomy; structured
// errors pass through unmodified.
func asEnvError(key string, err error) error {
	if envErr, ok := err.(*errors.EnvError); ok {
		return envErr
	}
	return errors.Transform(key, err)
}
