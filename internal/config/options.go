// Package config resolves the external interface's documented options
// (flags, environment variables, an optional mcfd.yaml) into a single
// validated Options value, via cobra command flags bound through
// viper so every source has one order of precedence: flag, then
// environment, then config file, then default.
package config

import (
	"github.com/spf13/viper"

	"github.com/go-mcfd/mcfd/internal/model"
)

// Options is the resolved, already-validated configuration for one
// compilation run.
type Options struct {
	Input     string
	Output    string
	Namespace string
	Shadow    bool
	Adapter   bool
	LogLevel  string
	LogFile   string
}

// Load reads Options out of v, applying defaults for anything neither a
// flag, an environment variable, nor a config file set.
func Load(v *viper.Viper) (Options, error) {
	opts := Options{
		Input:     v.GetString("input"),
		Output:    v.GetString("output"),
		Namespace: v.GetString("namespace"),
		Shadow:    v.GetBool("shadow"),
		Adapter:   v.GetBool("adapter"),
		LogLevel:  v.GetString("log-level"),
		LogFile:   v.GetString("log-file"),
	}
	if opts.Namespace == "" {
		opts.Namespace = model.DefaultInternalNamespace
	}
	if opts.LogLevel == "" {
		opts.LogLevel = "info"
	}

	if err := Validate(opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}
