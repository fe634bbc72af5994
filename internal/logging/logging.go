// Package logging routes the standard logger to a file in debug runs and
// discards it otherwise, so nothing is printed over the window's terminal.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	FileName   = "valentine.log"
	MaxLogSize = 10 * 1024 * 1024
)

// Setup points the standard logger at dir/valentine.log when debug is set.
// An existing log over MaxLogSize is renamed with a timestamp first.
// Returns the open file for the caller to close, or nil when logging is off.
func Setup(debug bool, dir string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("valentine-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	return f, nil
}
