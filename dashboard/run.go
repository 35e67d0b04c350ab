package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-gauge/core"
	"github.com/lixenwraith/vi-gauge/input"
	"github.com/lixenwraith/vi-gauge/terminal"
)

// statusOpa is how strongly the status text stands out from the background
const statusOpa core.Opa = 176

// Run drives the dashboard on an initialized screen until quit or ctx is done
func (d *Dashboard) Run(ctx context.Context, scr *terminal.Screen, machine *input.Machine) error {
	cols, rows := scr.Size()
	d.Layout(terminal.PixelSize(cols, max(rows-StatusRows, 1)))

	ticker := time.NewTicker(time.Second / time.Duration(d.cfg.UI.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	terminal.Go(func() {
		defer close(eventChan)
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			intent := machine.Process(ev)
			if intent == nil {
				continue
			}
			if intent.Type == input.IntentResize {
				scr.Sync()
			}
			if !d.HandleIntent(intent) {
				d.log.Info().Msg("quit")
				return nil
			}

		case <-ticker.C:
			if err := d.present(scr); err != nil {
				return err
			}
		}
	}
}

// present blits the areas repainted this frame and the status line
func (d *Dashboard) present(scr *terminal.Screen) error {
	for _, a := range d.Frame() {
		if err := scr.Blit(d.canvas.RGBA(), a); err != nil {
			return fmt.Errorf("dashboard: blit: %w", err)
		}
	}

	cols, rows := scr.Size()
	if rows > StatusRows {
		status := runewidth.FillRight(runewidth.Truncate(d.Status(), cols, "…"), cols)
		if _, err := scr.Text(0, rows-StatusRows, status, d.statusColor(), d.bg); err != nil {
			return fmt.Errorf("dashboard: status: %w", err)
		}
	}
	return scr.Show()
}

// statusColor is light text faded toward the background
func (d *Dashboard) statusColor() core.RGB {
	return d.bg.Blend(core.RGBWhite, statusOpa)
}
