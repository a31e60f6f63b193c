package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rook-computer/watchface/internal/app"
	"github.com/rook-computer/watchface/internal/buttons"
	"github.com/rook-computer/watchface/internal/render"
	"github.com/rook-computer/watchface/internal/state"
	"github.com/rook-computer/watchface/internal/system"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the face on the framebuffer until interrupted or F4 is pressed",
	RunE:  runFace,
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("device", "", "framebuffer device (default /dev/fb0)")
	cmd.Flags().String("interval", "", "tick interval, e.g. 1s")
	cmd.Flags().String("state", "", "file that keeps the scheme across restarts")
	cmd.Flags().Bool("debug", false, "log to the rotating debug log and draw a time label")
	cmd.Flags().Bool("no-console", false, "leave the console mode alone")
	cmd.Flags().Bool("grab", false, "take exclusive access to input devices")
	cmd.Flags().String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via WATCHFACE_STDIO_LOG")
}

func runFace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Best-effort: keep crash output when the console is in graphics mode.
	if err := system.RedirectStdIO(cfg.Logging.StdioLog); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Logging.Debug {
		fileLogger, closer := app.NewRotatingLogger(cfg.Logging.File, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays)
		defer closeQuietly(closer)
		logger = fileLogger
		logger.Infof("main", "debug logging enabled")
	}

	watchFace, err := loadFace(cfg, logger)
	if err != nil {
		logger.Errorf("app", "face init failed: %v", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := render.NewFBRenderer()
	renderer.Device = cfg.Display.Device

	btns := buttons.NewEvdevButtons(logger)
	btns.Grab, _ = cmd.Flags().GetBool("grab")

	a := app.New(state.NewStore(), renderer, watchFace, btns)
	a.Logger = logger
	a.Debug = cfg.Logging.Debug
	a.Interval = cfg.TickInterval()
	a.StatePath = cfg.State.Path
	noConsole, _ := cmd.Flags().GetBool("no-console")
	a.Console = !noConsole

	err = a.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func closeQuietly(c io.Closer) { _ = c.Close() }
