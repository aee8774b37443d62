// Package convert provides stateless converters from raw environment
// variable strings to typed values.
//
// Each converter returns an *errors.EnvError with code FAILED_CONVERSION
// when the input cannot be represented in the target type. Converters never
// validate beyond representability; range and format checks belong to
// assertions on the pipeline.
package convert
