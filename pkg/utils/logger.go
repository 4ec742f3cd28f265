package utils

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// The TUI owns stdout, so verbose logging goes to a dated file under /tmp.
// Without -verbose every Log call is a no-op.
var logger = zap.NewNop().Sugar()

// InitLogger initializes the logging system
func InitLogger(verbose bool) {
	if !verbose {
		return
	}

	cfg := zap.NewDevelopmentConfig()
	logPath := fmt.Sprintf("/tmp/deadliner_%s.log", time.Now().Format("2006-01-02"))
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	built, err := cfg.Build()
	if err != nil {
		fmt.Printf("Error creating log file: %v\n", err)
		return
	}
	logger = built.Sugar()

	Log("Verbose logging enabled")
}

// Log writes a debug message when verbose mode is enabled
func Log(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// CloseLogger flushes any buffered log output
func CloseLogger() {
	_ = logger.Sync()
}
