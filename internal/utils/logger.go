// Package utils provides shared helpers for logging and version resolution.
package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerInitializationFailedMessageFormat reports a failed logger construction.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// NewApplicationLogger constructs a zap logger configured for human-readable
// console output: messages are emitted bare, without timestamps or level tags.
func NewApplicationLogger() (*zap.Logger, error) {
	loggerConfiguration := zap.NewProductionConfig()
	loggerConfiguration.Encoding = "console"
	loggerConfiguration.DisableCaller = true
	loggerConfiguration.DisableStacktrace = true
	loggerConfiguration.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	loggerConfiguration.EncoderConfig.TimeKey = ""
	loggerConfiguration.EncoderConfig.LevelKey = ""
	loggerConfiguration.EncoderConfig.NameKey = ""
	loggerConfiguration.EncoderConfig.CallerKey = ""
	loggerConfiguration.EncoderConfig.MessageKey = "message"
	loggerConfiguration.EncoderConfig.StacktraceKey = ""
	return loggerConfiguration.Build()
}
