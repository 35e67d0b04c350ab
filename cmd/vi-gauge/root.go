package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vi-gauge/config"
)

// app carries the state shared by subcommands
type app struct {
	v       *viper.Viper
	cfgFile string
}

// load resolves the configuration from file, environment and flags
func (a *app) load() (*config.Config, error) {
	return config.Load(a.v, a.cfgFile)
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "vi-gauge",
		Short: "Terminal meter and slider",
		Long: `vi-gauge draws a circular meter driven by a slider in the terminal.
Drag the knobs with the mouse or step them with h/l and the arrow keys.
Configuration comes from vi-gauge.toml, VIGAUGE_* variables and flags.`,
		SilenceUsage: true,
	}
	// Accept --log_level as well as --log-level, matching config key spelling
	root.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default searches ./"+config.FileName+")")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log-file", "", "log file, empty disables logging")
	cobra.CheckErr(a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(a.v.BindPFlag("log.file", root.PersistentFlags().Lookup("log-file")))

	run := newRunCmd(a)
	root.AddCommand(run, newRenderCmd(a), newConfigCmd(a), newKeysCmd())
	// Bare invocation starts the dashboard
	root.RunE = run.RunE
	root.Flags().AddFlagSet(run.Flags())
	return root
}
