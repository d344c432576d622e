package providers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sentwatch/internal/structures"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeFetch
	TypeWatch
	TypeNotify
)

func (t TypeEnum) String() string {
	switch t {
	case TypeFetch:
		return "fetch"
	case TypeWatch:
		return "watch"
	case TypeNotify:
		return "notify"
	default:
		return "app"
	}
}

type Logger interface {
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Errorf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	log  zerolog.Logger
	file *os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	path := filepath.Join(conf.Logger.Dir, "sentwatch.log")
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.FileMode(conf.Logger.Mode))
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}

	var w io.Writer = file
	if conf.Debug {
		w = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stderr})
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &LogProvider{log: logger, file: file}, nil
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.log.Debug().Str("type", t.String()).Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.log.Info().Str("type", t.String()).Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.log.Warn().Str("type", t.String()).Msgf(format, args...)
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.log.Error().Str("type", t.String()).Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.log.Fatal().Str("type", t.String()).Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	if lp.file != nil {
		_ = lp.file.Close()
	}
}
