package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// setupLogger configures a charmbracelet logger writing to w.
func setupLogger(w io.Writer, level log.Level, timestamps bool) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		TimeFormat:      "15:04:05",
		Prefix:          "fixturegen",
	})
}
