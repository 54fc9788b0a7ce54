// Package config holds process configuration for the wordtallyd server:
// listen address, an optional alternate lemma file, log level, and the
// CORS toggle. Values come from the environment via envconfig struct
// tags; there are no command-line overrides.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is process-wide server configuration.
type Config struct {
	// ListenAddr is the address wordtallyd binds to.
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`
	// LexiconPath, if set, names a CSV-grammar lemma file (e.g. a domain
	// glossary) that is loaded in place of the embedded builtin lexicon;
	// the builtin entries are not merged in.
	LexiconPath string `envconfig:"LEXICON_PATH"`
	// LogLevel names a zerolog level ("debug", "info", "warn", "error").
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// CORSEnabled toggles the rs/cors middleware wrapping the mux.
	CORSEnabled bool `envconfig:"CORS_ENABLED" default:"true"`
}

// Load reads Config from the environment under the "wordtally" prefix
// (e.g. WORDTALLY_LISTEN_ADDR), applying each field's default tag when
// the variable is unset.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("wordtally", &c); err != nil {
		return Config{}, errors.Wrap(err, "config: load")
	}
	return c, nil
}
