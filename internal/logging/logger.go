// Package logging provides structured logging helpers for the application.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"
)

func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}

// RecoverPanic recovers from a panic in the calling goroutine, logs it along
// with a stack dump, and runs the optional cleanup function.
func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		Error("Panic recovered", "name", name, "panic", r)

		filename := fmt.Sprintf("langhost-panic-%s-%s.log", name, time.Now().Format("20060102-150405"))
		if file, err := os.Create(filename); err == nil {
			defer file.Close()
			fmt.Fprintf(file, "Panic in %s: %v\n\n", name, r)
			fmt.Fprintf(file, "Time: %s\n\n", time.Now().Format(time.RFC3339))
			fmt.Fprintf(file, "Stack Trace:\n%s\n", debug.Stack())
			Info("Panic details written to file", "file", filename)
		} else {
			Error("Failed to create panic log file", "error", err)
		}

		if cleanup != nil {
			cleanup()
		}
	}
}
