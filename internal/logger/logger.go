package logger

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/developia-II/moderated-translator/internal/config"
)

// New builds the process logger. Unknown levels fall back to info and
// unknown formats to text.
func New(w io.Writer, cfg config.Log) *log.Logger {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
