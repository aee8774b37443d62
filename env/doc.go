// Package env resolves environment variables into strongly-typed values
// through a chainable validation pipeline.
//
// Entry constructors (Required, Optional, Number, Bool, Array, Int,
// Duration) read a variable once and produce a *Value carrying the key and
// the typed payload. The caller chains transforms, assertions, and
// conversions, then calls Finalize to extract the value. The first failure
// sticks: later steps are skipped and Finalize reports a structured
// *errors.EnvError naming the key, the failed step, and why.
//
// # Usage
//
//	port, err := env.Number("PORT").
//	    Assert(assert.IsPort[float64]()).
//	    Finalize()
//
//	rate, err := env.Convert(env.Required("RATE_LIMIT"), convert.Number).
//	    Transform(func(n float64) float64 { return n * 60 }).
//	    Finalize()
//
// Type-changing steps are free functions (Convert), since Go methods cannot
// introduce new type parameters; same-type steps are methods.
//
// # Prefixes
//
//	app := env.WithPrefix("APP")
//	dbURL, err := app.WithPrefix("DB").Required("URL").Finalize() // reads APP_DB_URL
//
// # Sources
//
// Lookups go through a Source. The default reads the process environment;
// Map sources inject values for tests, and Viper sources bridge values
// loaded by a wider viper-based config stack.
package env
