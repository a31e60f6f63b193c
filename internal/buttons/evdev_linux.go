//go:build linux

package buttons

import (
	"context"
	"errors"
	"sync"

	evdev "github.com/holoplot/go-evdev"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// DefaultExitKeys end the app when pressed.
var DefaultExitKeys = []evdev.EvCode{evdev.KEY_F4, evdev.KEY_POWER}

// EvdevButtons turns key presses on Linux input devices into Exit events.
type EvdevButtons struct {
	Logger logger
	// DeviceName limits listening to devices with this name; empty means all.
	DeviceName string
	Keys       []evdev.EvCode
	// Grab takes exclusive access so key presses do not reach the console.
	Grab bool

	ch       chan Event
	mu       sync.Mutex
	devices  []*evdev.InputDevice
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewEvdevButtons(l logger) *EvdevButtons {
	return &EvdevButtons{Logger: l, Keys: DefaultExitKeys, ch: make(chan Event, 1)}
}

func (b *EvdevButtons) Events() <-chan Event { return b.ch }

// Start opens the matching devices and reads them until ctx is done or
// Stop is called. It fails only when no device could be opened.
func (b *EvdevButtons) Start(ctx context.Context) error {
	if b.ch == nil {
		b.ch = make(chan Event, 1)
	}
	if len(b.Keys) == 0 {
		b.Keys = DefaultExitKeys
	}
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return err
	}

	for _, p := range paths {
		if b.DeviceName != "" && p.Name != b.DeviceName {
			continue
		}
		dev, err := evdev.Open(p.Path)
		if err != nil {
			b.errorf("open %s: %v", p.Path, err)
			continue
		}
		if b.Grab {
			if err := dev.Grab(); err != nil {
				b.errorf("grab %s: %v", p.Path, err)
			}
		}
		b.mu.Lock()
		b.devices = append(b.devices, dev)
		b.mu.Unlock()
		b.infof("listening on %s (%s)", p.Path, p.Name)

		b.wg.Add(1)
		go b.read(dev)
	}

	b.mu.Lock()
	opened := len(b.devices)
	b.mu.Unlock()
	if opened == 0 {
		return errors.New("no input device available")
	}

	go func() {
		<-ctx.Done()
		b.closeDevices()
	}()
	return nil
}

func (b *EvdevButtons) read(dev *evdev.InputDevice) {
	defer b.wg.Done()
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			// Closed by Stop or the device went away.
			return
		}
		if isPress(ev, b.Keys) {
			b.infof("exit key %d pressed", ev.Code)
			select {
			case b.ch <- Exit:
			default:
			}
		}
	}
}

func (b *EvdevButtons) closeDevices() {
	b.mu.Lock()
	devices := b.devices
	b.devices = nil
	b.mu.Unlock()
	for _, dev := range devices {
		if b.Grab {
			_ = dev.Ungrab()
		}
		_ = dev.Close()
	}
}

// Stop closes every device, waits for the readers and closes Events.
func (b *EvdevButtons) Stop() error {
	b.stopOnce.Do(func() {
		b.closeDevices()
		b.wg.Wait()
		if b.ch != nil {
			close(b.ch)
		}
	})
	return nil
}

// isPress reports a key-down of one of keys. Repeats and releases are ignored.
func isPress(ev *evdev.InputEvent, keys []evdev.EvCode) bool {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != 1 {
		return false
	}
	for _, k := range keys {
		if ev.Code == k {
			return true
		}
	}
	return false
}

func (b *EvdevButtons) infof(format string, args ...interface{}) {
	if b.Logger != nil {
		b.Logger.Infof("input", format, args...)
	}
}

func (b *EvdevButtons) errorf(format string, args ...interface{}) {
	if b.Logger != nil {
		b.Logger.Errorf("input", format, args...)
	}
}
