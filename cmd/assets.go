package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rook-computer/watchface/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Export the built-in artwork as SVG files",
	Long: `Export the built-in artwork as SVG files.
Edit them and point --assets (or assets.dir in the config file) at the directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		names, err := assets.WriteSVG(dir)
		if err != nil {
			return err
		}
		for _, name := range []string{names.Background, names.HourHand, names.MinuteHand} {
			fmt.Println(filepath.Join(dir, name))
		}
		return nil
	},
}

func init() {
	assetsCmd.Flags().StringP("dir", "d", "artwork", "output directory")
	rootCmd.AddCommand(assetsCmd)
}
