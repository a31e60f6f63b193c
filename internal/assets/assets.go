package assets

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/rook-computer/watchface/internal/imaging"
)

// ErrMissingAsset is returned when one of the three face images is absent.
var ErrMissingAsset = errors.New("missing asset")

// Set holds the decoded face artwork. Background is the dark variant; the
// light variant is derived from it at startup.
type Set struct {
	Background image.Image
	HourHand   image.Image
	MinuteHand image.Image
}

// Validate reports the first missing image.
func (s Set) Validate() error {
	switch {
	case s.Background == nil || s.Background.Bounds().Empty():
		return fmt.Errorf("%w: background", ErrMissingAsset)
	case s.HourHand == nil || s.HourHand.Bounds().Empty():
		return fmt.Errorf("%w: hour hand", ErrMissingAsset)
	case s.MinuteHand == nil || s.MinuteHand.Bounds().Empty():
		return fmt.Errorf("%w: minute hand", ErrMissingAsset)
	}
	return nil
}

// Names are the file names of a Set inside an asset directory.
type Names struct {
	Background string `yaml:"background"`
	HourHand   string `yaml:"hour_hand"`
	MinuteHand string `yaml:"minute_hand"`
}

func DefaultNames() Names {
	return Names{
		Background: "background.png",
		HourHand:   "hour_hand.png",
		MinuteHand: "minute_hand.png",
	}
}

// Load decodes the three images from dir. Any failure is fatal for the face.
func Load(dir string, names Names) (Set, error) {
	var set Set
	files := []struct {
		role string
		name string
		dst  *image.Image
	}{
		{"background", names.Background, &set.Background},
		{"hour hand", names.HourHand, &set.HourHand},
		{"minute hand", names.MinuteHand, &set.MinuteHand},
	}
	for _, f := range files {
		if f.name == "" {
			return Set{}, fmt.Errorf("%w: no file configured for %s", ErrMissingAsset, f.role)
		}
	}
	for _, f := range files {
		img, err := imaging.DecodeFile(filepath.Join(dir, f.name))
		if err != nil {
			return Set{}, fmt.Errorf("loading %s: %w", f.role, err)
		}
		*f.dst = img
	}
	return set, set.Validate()
}
