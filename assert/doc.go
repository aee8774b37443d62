// Package assert provides reusable predicates with attached diagnostic
// context for validating environment values.
//
// An Assertion pairs a predicate with a context map. When a pipeline
// rejects a value, the assertion's context is merged into the resulting
// error so the failure reports what was checked and against which bounds.
// Assertions are immutable once created and safe to share across pipelines.
//
// # Usage
//
//	port := env.Number("PORT")
//	port.Assert(assert.IsPort[float64]())
//
//	host := env.Required("HOST")
//	host.Assert(assert.MinLen[string](3), "host names are at least 3 characters")
package assert
