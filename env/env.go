package env

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/kbukum/envkit/util"
)

// DefaultKeySeparator joins prefix segments to keys.
const DefaultKeySeparator = "_"

// Env resolves keys against a Source, optionally under a key prefix. Most
// callers use the package-level entry constructors, which share a default
// Env over the process environment.
type Env struct {
	source   Source
	prefix   string
	sep      string
	arraySep string
	logger   *zerolog.Logger
}

// Option configures an Env.
type Option func(*Env)

// WithSource sets the lookup source.
func WithSource(source Source) Option {
	return func(e *Env) { e.source = source }
}

// WithSeparator sets the separator appended to prefix segments.
func WithSeparator(sep string) Option {
	return func(e *Env) { e.sep = sep }
}

// WithArraySeparator sets the element separator used by Array entries.
func WithArraySeparator(sep string) Option {
	return func(e *Env) { e.arraySep = sep }
}

// WithLogger enables debug-level resolution logging. Values are masked
// before logging so secrets never reach log output.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Env) { e.logger = &logger }
}

// New creates an Env. Defaults: process-environment source, "_" prefix
// separator, "," array separator, no logging.
func New(opts ...Option) *Env {
	e := &Env{
		source:   OS(),
		sep:      DefaultKeySeparator,
		arraySep: ",",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithPrefix returns a derived Env that resolves every key under the given
// prefix. The prefix is normalized to exactly one trailing separator, and
// prefixes nest: WithPrefix("APP").WithPrefix("DB") resolves "URL" as
// "APP_DB_URL". Source, separators, and logger carry over.
func (e *Env) WithPrefix(prefix string) *Env {
	derived := *e
	derived.prefix = e.prefix + e.normalizePrefix(prefix)
	return &derived
}

// normalizePrefix ensures exactly one trailing separator, never a duplicate.
func (e *Env) normalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	if strings.HasSuffix(prefix, e.sep) {
		return prefix
	}
	return prefix + e.sep
}

// key returns the effective lookup key for a bare key.
func (e *Env) key(key string) string { return e.prefix + key }

// lookup consults the source once for the effective key.
func (e *Env) lookup(key string) (string, bool) {
	effective := e.key(key)
	val, ok := e.source.Lookup(effective)
	if e.logger != nil {
		e.logger.Debug().
			Str("key", effective).
			Bool("present", ok).
			Str("value", util.MaskSecret(val, 4)).
			Msg("resolved environment variable")
	}
	return val, ok
}

// defaultEnv backs the package-level entry constructors.
var defaultEnv = New()

// WithPrefix returns a namespace over the process environment bound to the
// given key prefix.
func WithPrefix(prefix string) *Env { return defaultEnv.WithPrefix(prefix) }
