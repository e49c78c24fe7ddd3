package setup

import (
	"fmt"
	"os"

	"github.com/wathiqhq/trustengine/internal/setup/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLoggers builds the main and database loggers from the debug
// configuration. The database logger stays at warn level unless debug
// logging is requested, since query logging is noisy.
func NewLoggers(cfg *config.Debug) (*zap.Logger, *zap.Logger, error) {
	level := zapcore.InfoLevel

	if cfg.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}

		level = parsed
	}

	mainLogger := newLogger(level)

	dbLevel := zapcore.WarnLevel
	if level == zapcore.DebugLevel {
		dbLevel = zapcore.DebugLevel
	}

	dbLogger := newLogger(dbLevel)

	return mainLogger, dbLogger, nil
}

func newLogger(level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}
