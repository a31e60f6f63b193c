package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rook-computer/watchface/internal/app"
	"github.com/rook-computer/watchface/internal/assets"
	"github.com/rook-computer/watchface/internal/config"
	"github.com/rook-computer/watchface/internal/face"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "watchface",
	Short: "Analog watch face for Linux framebuffers",
	Long: `Draws an analog watch face with a sweeping seconds ring on the Linux framebuffer.
The dial switches between a dark and a light scheme at every full minute.`,
	SilenceUsage: true,
	RunE:         runFace,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML config file (optional)")
	rootCmd.PersistentFlags().String("assets", "", "directory with background, hour and minute hand images; built-in artwork when empty")
	rootCmd.PersistentFlags().String("accent", "", "accent color as #rrggbb")
	rootCmd.PersistentFlags().Float64("density", 0, "pixels per dp")
	addRunFlags(rootCmd)
}

// loadConfig reads the config file and environment, then applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("assets") {
		cfg.Assets.Dir, _ = flags.GetString("assets")
	}
	if flags.Changed("accent") {
		cfg.Face.Accent, _ = flags.GetString("accent")
	}
	if flags.Changed("density") {
		cfg.Face.Density, _ = flags.GetFloat64("density")
	}
	if flags.Lookup("device") != nil && flags.Changed("device") {
		cfg.Display.Device, _ = flags.GetString("device")
	}
	if flags.Lookup("interval") != nil && flags.Changed("interval") {
		cfg.Display.Interval, _ = flags.GetString("interval")
	}
	if flags.Lookup("debug") != nil && flags.Changed("debug") {
		cfg.Logging.Debug, _ = flags.GetBool("debug")
	}
	if flags.Lookup("stdio-log") != nil && flags.Changed("stdio-log") {
		cfg.Logging.StdioLog, _ = flags.GetString("stdio-log")
	}
	if flags.Lookup("state") != nil && flags.Changed("state") {
		cfg.State.Path, _ = flags.GetString("state")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating flags: %w", err)
	}
	return cfg, nil
}

// loadFace decodes the configured artwork and prepares the face.
func loadFace(cfg *config.Config, logger app.Logger) (*face.Face, error) {
	style, err := cfg.Style()
	if err != nil {
		return nil, err
	}

	var set assets.Set
	if cfg.Assets.Dir == "" {
		set, err = assets.Default()
		logger.Infof("app", "using built-in artwork")
	} else {
		set, err = assets.Load(cfg.Assets.Dir, cfg.Assets.Names)
		logger.Infof("app", "artwork from %s", cfg.Assets.Dir)
	}
	if err != nil {
		return nil, err
	}
	return face.New(set, style)
}
