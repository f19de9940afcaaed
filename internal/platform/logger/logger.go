package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger es la superficie mínima que usan services y middleware.
// La implementación concreta es zerolog; la interfaz evita acoplar
// los módulos de dominio a la librería.
type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  string // debug|info|warn|error (default info)
	App    string
	Pretty bool // console writer para dev
	Out    io.Writer
}

type zlog struct {
	l zerolog.Logger
}

func New(opts Options) Logger {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	zl := zerolog.New(out).Level(parseLevel(opts.Level)).With().Timestamp()
	if strings.TrimSpace(opts.App) != "" {
		zl = zl.Str("app", strings.TrimSpace(opts.App))
	}

	return &zlog{l: zl.Logger()}
}

// NewFromEnv crea logger desde env:
// - LOG_LEVEL=debug|info|warn|error (default info)
// - APP_NAME (opcional)
// - APP_ENV=development => salida console
func NewFromEnv() Logger {
	return New(Options{
		Level:  os.Getenv("LOG_LEVEL"),
		App:    os.Getenv("APP_NAME"),
		Pretty: strings.EqualFold(os.Getenv("APP_ENV"), "development"),
	})
}

// Nop devuelve un logger que descarta todo (para tests).
func Nop() Logger {
	return &zlog{l: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *zlog) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return z
	}
	ctx := z.l.With()
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		ctx = ctx.Interface(k, v)
	}
	return &zlog{l: ctx.Logger()}
}

func (z *zlog) Debug(msg string, fields map[string]any) { z.emit(z.l.Debug(), msg, fields) }
func (z *zlog) Info(msg string, fields map[string]any)  { z.emit(z.l.Info(), msg, fields) }
func (z *zlog) Warn(msg string, fields map[string]any)  { z.emit(z.l.Warn(), msg, fields) }
func (z *zlog) Error(msg string, fields map[string]any) { z.emit(z.l.Error(), msg, fields) }

func (z *zlog) emit(ev *zerolog.Event, msg string, fields map[string]any) {
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
