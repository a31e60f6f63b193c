package app

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("face", "layout %dx%d", 400, 400)
	l.Errorf("state", "save failed: %v", "disk full")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	pattern := regexp.MustCompile(`^\S+ \[(INFO|ERROR)\] \w+: .+$`)
	for _, line := range lines {
		if !pattern.MatchString(line) {
			t.Errorf("line %q does not match log format", line)
		}
	}
	if !strings.HasSuffix(lines[0], "[INFO] face: layout 400x400") {
		t.Errorf("info line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "[ERROR] state: save failed: disk full") {
		t.Errorf("error line = %q", lines[1])
	}
}

func TestRotatingLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "watchface.log")
	l, closer := NewRotatingLogger(path, 1, 1, 1)
	l.Infof("app", "hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] app: hello") {
		t.Errorf("log = %q", data)
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Infof("x", "%d", 1)
	l.Errorf("x", "%d", 1)
}
