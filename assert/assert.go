package assert

// Assertion pairs a predicate over T with a diagnostic context map.
type Assertion[T any] struct {
	// Predicate reports whether a value is acceptable.
	Predicate func(T) bool
	// Context describes the check for error reporting. It should carry a
	// "description" field plus whatever bounds the predicate closes over.
	Context map[string]any
}

// New creates an Assertion from a predicate and an optional context map.
func New[T any](predicate func(T) bool, context map[string]any) Assertion[T] {
	return Assertion[T]{Predicate: predicate, Context: context}
}

// Check evaluates the predicate against v. An assertion without a predicate
// accepts every value.
func (a Assertion[T]) Check(v T) bool {
	if a.Predicate == nil {
		return true
	}
	return a.Predicate(v)
}
