package utils_test

import (
	"testing"

	"github.com/projtree/projtree/internal/utils"
)

// TestNewApplicationLoggerBuilds verifies the console logger constructs.
func TestNewApplicationLoggerBuilds(testingHandle *testing.T) {
	loggerInstance, loggerError := utils.NewApplicationLogger()
	if loggerError != nil {
		testingHandle.Fatalf("logger error: %v", loggerError)
	}
	if loggerInstance == nil {
		testingHandle.Fatalf("expected logger instance")
	}
	_ = loggerInstance.Sync()
}

// TestGetApplicationVersionNeverEmpty verifies version resolution always
// falls back to a usable value.
func TestGetApplicationVersionNeverEmpty(testingHandle *testing.T) {
	if resolvedVersion := utils.GetApplicationVersion(); resolvedVersion == "" {
		testingHandle.Fatalf("expected non-empty version")
	}
}
