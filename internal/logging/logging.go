package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level    string   `yaml:"level" toml:"level"`       // debug, info, warn, error
	Encoding string   `yaml:"encoding" toml:"encoding"` // console or json
	Output   []string `yaml:"output" toml:"output"`     // defaults to stderr
}

func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
	}
	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	output := cfg.Output
	if len(output) == 0 {
		output = []string{"stderr"}
	}
	zc := zap.Config{
		Level:       level,
		Development: false,
		Encoding:    encoding,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      output,
		ErrorOutputPaths: []string{"stderr"},
	}
	return zc.Build()
}
