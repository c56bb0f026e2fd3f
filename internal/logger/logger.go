package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger: JSON in production, colored console
// output otherwise.
func New(production bool) (*zap.Logger, error) {
	var config zap.Config

	if production {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}

// NewCLI builds a quiet logger for command line use: warnings and above on
// stderr.
func NewCLI(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	config.DisableCaller = true
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return config.Build()
}
