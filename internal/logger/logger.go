// Package logger writes an append-only debug log under the user's home
// directory so engine activity can be inspected without disturbing the
// terminal UI.
package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

const maxLogSize = 10 * 1024 * 1024

var (
	debugLog *os.File
	logPath  string
)

// Init opens ~/.sheepshead/debug.log for appending and routes the standard
// logger there. An oversized file is rotated aside first.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".sheepshead")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath = filepath.Join(logDir, "debug.log")
	debugLog, err = openLog()
	if err != nil {
		return err
	}

	if info, err := debugLog.Stat(); err == nil && info.Size() > maxLogSize {
		_ = debugLog.Close()
		backupPath := fmt.Sprintf("%s.%d", logPath, time.Now().Unix())
		_ = os.Rename(logPath, backupPath)
		if debugLog, err = openLog(); err != nil {
			return err
		}
	}

	log.SetOutput(debugLog)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	LogInfo("logger initialized, log file: %s", logPath)
	return nil
}

func openLog() (*os.File, error) {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// Close closes the log file.
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
	}
}

func LogInfo(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

func LogError(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}

// LogPanic records a recovered panic with its stack trace.
func LogPanic(r any) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath returns the current log file path.
func GetLogPath() string {
	return logPath
}
