package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/vi-gauge/dashboard"
	"github.com/lixenwraith/vi-gauge/logging"
)

type renderOptions struct {
	out           string
	width, height int
	value, start  int32
}

func newRenderCmd(a *app) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}
			log := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)

			dash, err := dashboard.New(cfg, opts.width, opts.height, dashboard.WithLogger(log))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("start") {
				dash.SetStartValue(opts.start)
			}
			if cmd.Flags().Changed("value") {
				dash.SetValue(opts.value)
			}
			dash.Frame()

			f, err := os.Create(opts.out)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if err := dash.Canvas().EncodePNG(f); err != nil {
				f.Close()
				return fmt.Errorf("render: encode: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			log.Info().Str("file", opts.out).Msg("frame written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "vi-gauge.png", "output PNG path")
	cmd.Flags().IntVar(&opts.width, "width", 160, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 140, "image height in pixels")
	cmd.Flags().Int32Var(&opts.value, "value", 0, "slider value")
	cmd.Flags().Int32Var(&opts.start, "start", 0, "slider start value in range mode")
	return cmd
}
