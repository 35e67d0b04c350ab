package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-gauge/audio"
	"github.com/lixenwraith/vi-gauge/config"
	"github.com/lixenwraith/vi-gauge/dashboard"
	"github.com/lixenwraith/vi-gauge/input"
	"github.com/lixenwraith/vi-gauge/logging"
	"github.com/lixenwraith/vi-gauge/terminal"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			if mute, _ := cmd.Flags().GetBool("mute"); mute {
				cfg.Audio.Enabled = false
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runDashboard(ctx, cfg)
		},
	}
	cmd.Flags().Int("fps", 0, "frame rate")
	cmd.Flags().Bool("mute", false, "disable click feedback")
	cobra.CheckErr(a.v.BindPFlag("ui.fps", cmd.Flags().Lookup("fps")))
	return cmd
}

func runDashboard(ctx context.Context, cfg *config.Config) error {
	log, closer, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	keys, err := keyTable(cfg.Keys)
	if err != nil {
		return err
	}
	machine := input.NewMachine()
	machine.SetKeyTable(keys)

	clicker := newClicker(cfg.Audio, log)
	defer clicker.Cleanup()

	scr := terminal.New(nil, log)
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()

	cols, rows := scr.Size()
	w, h := terminal.PixelSize(cols, max(rows-dashboard.StatusRows, 1))
	dash, err := dashboard.New(cfg, w, h,
		dashboard.WithLogger(log),
		dashboard.WithFeedback(clicker),
	)
	if err != nil {
		return err
	}
	return dash.Run(ctx, scr, machine)
}

// newClicker starts audio feedback, a missing device only disables it
func newClicker(ac config.AudioConfig, log zerolog.Logger) *audio.Clicker {
	acfg := audio.DefaultConfig()
	acfg.Enabled = ac.Enabled
	acfg.Frequency = ac.Frequency
	acfg.Volume = ac.Volume

	clicker := audio.NewClicker(acfg, log)
	if err := clicker.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without")
	}
	return clicker
}

// keyTable merges configured bindings over the defaults
func keyTable(keys map[string]string) (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if len(keys) == 0 {
		return kt, nil
	}
	override, err := input.LoadKeyConfig(keys)
	if err != nil {
		return nil, fmt.Errorf("config: keys: %w", err)
	}
	kt.Merge(override)
	return kt, nil
}
