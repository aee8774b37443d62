// Package util provides small shared helpers for envkit packages.
//
// It includes string sanitization for raw environment values, secret
// masking for safe logging, and a generic length probe used by
// length-based assertions.
package util
