package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BindFlags registers the documented CLI flags on cmd and binds them
// (together with the bare LOG_LEVEL and MCFD_-prefixed environment
// variables, e.g. MCFD_LOG_FILE, and an
// optional mcfd.yaml in the working directory) into v, so config.Load can
// read a single resolved view regardless of which source set a value.
func BindFlags(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()
	flags.String("input", "", "path to the source datapack")
	flags.String("output", "", "path to write the compiled debug datapack")
	flags.String("namespace", "", "internal namespace for generated files (default \"mcfd\")")
	flags.Bool("shadow", false, "also forward each original function to its debug namespace dispatcher")
	flags.Bool("adapter", false, "suppress chat messages meant for a human player, for a debug adapter driving its own UI")
	flags.String("log-level", "", "trace, debug, info, warn, or error (default \"info\")")
	flags.String("log-file", "", "write logs to this file instead of stderr")

	v.SetEnvPrefix("mcfd")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// spec documents the bare LOG_LEVEL env var, not the MCFD_-prefixed
	// form AutomaticEnv would otherwise require for this key.
	_ = v.BindEnv("log-level", "LOG_LEVEL")

	v.SetConfigName("mcfd")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // absence of mcfd.yaml is not an error

	_ = v.BindPFlags(flags)
}
