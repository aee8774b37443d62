package errors

// ErrorCode represents a machine-readable failure code.
type ErrorCode string

// Resolution errors
const (
	// ErrCodeMissingVariable indicates the variable has no value and no usable default.
	ErrCodeMissingVariable ErrorCode = "MISSING_VARIABLE"
)

// Validation errors
const (
	// ErrCodeFailedAssertion indicates a predicate rejected the current value.
	ErrCodeFailedAssertion ErrorCode = "FAILED_ASSERTION"
	// ErrCodeFailedConversion indicates a raw value could not be converted to the target type.
	ErrCodeFailedConversion ErrorCode = "FAILED_CONVERSION"
	// ErrCodeFailedTransform indicates a caller-supplied transform reported an error.
	ErrCodeFailedTransform ErrorCode = "FAILED_TRANSFORM"
)

var fatalCodes = map[ErrorCode]bool{
	ErrCodeMissingVariable:  true,
	ErrCodeFailedAssertion:  true,
	ErrCodeFailedConversion: true,
	ErrCodeFailedTransform:  true,
}

// IsFatalCode returns true if the error code must abort resolution.
// Every code in the taxonomy is fatal: a present-but-invalid value is
// treated as an intentional override and never falls back to a default.
func IsFatalCode(code ErrorCode) bool {
	return fatalCodes[code]
}
