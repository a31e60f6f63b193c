//go:build !linux

package buttons

import (
	"context"
	"testing"
)

func TestEvdevButtonsUnsupported(t *testing.T) {
	b := NewEvdevButtons(nil)
	b.Grab = true
	b.DeviceName = "gpio-keys"
	if err := b.Start(context.Background()); err == nil {
		t.Fatal("expected Start to fail off linux")
	}
	if err := b.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if _, ok := <-b.Events(); ok {
		t.Error("events channel should be closed after Stop")
	}
}
