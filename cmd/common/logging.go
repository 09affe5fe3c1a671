package common

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LogPath returns the path to the log file (~/.guiinfo/guiinfo.log).
func LogPath() string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "guiinfo.log")
}

// SetupLogging installs the default slog handler writing to w, and also to
// ~/.guiinfo/guiinfo.log when toFile is set. The returned func closes the
// log file.
func SetupLogging(w io.Writer, level string, toFile bool) func() {
	closer := func() {}
	if toFile {
		if logPath := LogPath(); logPath != "" {
			if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
				if logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
					w = io.MultiWriter(w, logFile)
					closer = func() { _ = logFile.Close() }
				}
			}
		}
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLogLevel(level),
	})
	slog.SetDefault(slog.New(handler))
	return closer
}
