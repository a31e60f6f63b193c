//go:build !unix

package system

import "os"

// RedirectStdIO swaps os.Stdout and os.Stderr for path. Runtime panics are
// not captured this way.
func RedirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
