//go:build !linux

package buttons

import (
	"context"
	"errors"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// EvdevButtons is unavailable off Linux; Start always fails. DeviceName and
// Grab are accepted so callers configure it the same way on every platform.
type EvdevButtons struct {
	*NoopButtons
	Logger     logger
	DeviceName string
	Grab       bool
}

func NewEvdevButtons(l logger) *EvdevButtons {
	return &EvdevButtons{NoopButtons: NewNoopButtons(), Logger: l}
}

func (b *EvdevButtons) Start(ctx context.Context) error {
	return errors.New("input devices are only supported on linux")
}
