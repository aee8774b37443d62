package assert

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Tag asserts the value against a go-playground/validator tag expression,
// e.g. "email", "ip", "fqdn", or composites like "hostname|ip".
func Tag(tag string) Assertion[string] {
	return New(func(v string) bool {
		return getValidator().Var(v, tag) == nil
	}, map[string]any{"description": "Validator tag", "tag": tag})
}
