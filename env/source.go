package env

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Source is the environment collaborator: a single-key lookup consulted
// exactly once per entry constructor call. Later mutation of the underlying
// store has no effect on already-constructed chains.
type Source interface {
	// Lookup returns the raw value for key and whether the key is set.
	Lookup(key string) (string, bool)
}

type osSource struct{}

func (osSource) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// OS returns a Source backed by the process environment.
func OS() Source { return osSource{} }

type mapSource map[string]string

func (m mapSource) Lookup(key string) (string, bool) {
	val, ok := m[key]
	return val, ok
}

// Map returns a Source backed by an explicit key-value map. Useful for
// tests and for feeding values that did not come from the process
// environment.
func Map(values map[string]string) Source { return mapSource(values) }

type viperSource struct{ v *viper.Viper }

func (s viperSource) Lookup(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// Viper returns a Source backed by a viper instance, so values loaded by a
// viper-based config stack can feed pipelines. Keys are passed to viper
// verbatim.
func Viper(v *viper.Viper) Source { return viperSource{v: v} }

// Load reads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it loads
// ".env" from the working directory. A bootstrap convenience; resolution
// itself always goes through a Source.
func Load(files ...string) error { return godotenv.Load(files...) }

// Overload is Load but overrides variables that are already set.
func Overload(files ...string) error { return godotenv.Overload(files...) }
