package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rook-computer/watchface/internal/app"
	"github.com/rook-computer/watchface/internal/app/screens"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/state"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single frame to a PNG file",
	Long: `Render a single frame to a PNG file without a framebuffer.
Useful to check artwork and colors on a development machine.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		at, _ := cmd.Flags().GetString("time")
		schemeName, _ := cmd.Flags().GetString("scheme")
		debug, _ := cmd.Flags().GetBool("label")

		now := time.Now()
		if at != "" {
			now, err = parseClock(at, now)
			if err != nil {
				return err
			}
		}
		scheme, ok := state.ParseScheme(schemeName)
		if !ok {
			return fmt.Errorf("unknown scheme %q, want dark or light", schemeName)
		}

		watchFace, err := loadFace(cfg, app.NoopLogger{})
		if err != nil {
			return err
		}
		defer watchFace.Release()
		if !watchFace.Resize(width, height) {
			return fmt.Errorf("cannot lay out a %dx%d canvas", width, height)
		}

		store := state.NewStore()
		store.SetScheme(scheme)

		canvas := render.NewCanvas(width, height)
		canvas.Clear(render.Background)
		screen := screens.NewWatchFaceScreen(watchFace, func() time.Time { return now }, debug)
		screen.Draw(canvas, store.Snapshot())

		f, err := os.Create(out) //nolint:gosec // G304: output path is a flag
		if err != nil {
			return err
		}
		if err := canvas.EncodePNG(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("encoding %s: %w", out, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%dx%d, %s, %s)\n", out, width, height, now.Format("15:04:05"), scheme)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("out", "o", "watchface.png", "output PNG file")
	renderCmd.Flags().Int("width", render.CanvasWidth, "canvas width in pixels")
	renderCmd.Flags().Int("height", render.CanvasHeight, "canvas height in pixels")
	renderCmd.Flags().StringP("time", "t", "", "clock time as HH:MM or HH:MM:SS (default now)")
	renderCmd.Flags().StringP("scheme", "s", "dark", "color scheme: dark | light")
	renderCmd.Flags().Bool("label", false, "draw the debug time label")
	rootCmd.AddCommand(renderCmd)
}

// parseClock reads a wall-clock time on the day of ref.
func parseClock(value string, ref time.Time) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour(), t.Minute(), t.Second(), 0, ref.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want HH:MM or HH:MM:SS", value)
}
