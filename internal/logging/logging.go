// Package logging sets up the file logger. The terminal belongs to the
// TUI, so nothing is written to stderr once the program starts.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const fileName = "diary.log"

// Level parses a config level name. Unknown names fall back to info.
func Level(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// New returns a logger that writes JSON lines to w
func New(w io.Writer, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	return zerolog.New(w).Level(Level(level)).With().Timestamp().Logger()
}

// Open appends to diary.log in dir. The returned closer closes the file.
func Open(dir, level string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return New(f, level), f, nil
}
