// Command mcfd compiles a vanilla Minecraft datapack into a debug
// datapack: the same functions, instrumented with breakpoints,
// suspend/resume, and call-stack tracking, using only commands the game
// itself understands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/go-mcfd/mcfd/internal/compiler"
	"github.com/go-mcfd/mcfd/internal/config"
	"github.com/go-mcfd/mcfd/internal/diagnostics"
	"github.com/go-mcfd/mcfd/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "mcfd",
		Short:         "Compile a Minecraft datapack into a debug datapack",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := config.Load(v)
			if err != nil {
				return err
			}

			log, err := logging.New(opts.LogLevel, opts.LogFile)
			if err != nil {
				return err
			}

			result, err := compiler.Compile(afero.NewOsFs(), opts, log)
			if err != nil {
				return err
			}
			for _, line := range result.Collector.Lines() {
				fmt.Fprintln(os.Stderr, line)
			}
			return nil
		},
	}
	config.BindFlags(rootCmd, v)

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return 1
	}
	return 0
}

// printError renders a Diagnostic in the taxonomy's single-line format,
// falling back to the bare error text for anything cobra itself produced
// (unknown flag, bad usage) before the compiler ever ran.
func printError(err error) {
	if d, ok := err.(diagnostics.Diagnostic); ok {
		fmt.Fprintln(os.Stderr, diagnostics.Render(d))
		return
	}
	fmt.Fprintln(os.Stderr, "mcfd:", err)
}
