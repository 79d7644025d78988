// Package logging points the process-wide slog default at a file
// under the data directory. Once the TUI owns the terminal, nothing
// may write to stdout or stderr.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Init routes slog output to ~/.tablero/logs/tablero.log, appending
// across runs. Text format, debug level.
func Init() error {
	file, err := openLogFile()
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	redirectStdLog(file)
	return nil
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".tablero", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "tablero.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// redirectStdLog captures dependencies that still use the stdlib
// logger, so their output lands in the file too.
func redirectStdLog(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}
