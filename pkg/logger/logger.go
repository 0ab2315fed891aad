package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config del logger de la aplicación.
type Config struct {
	Env    string    // "development" activa la salida de consola legible
	Level  string    // trace, debug, info, warn, error; otro valor cae a info
	Writer io.Writer // destino de salida; nil usa os.Stdout
}

// Logger emisor de logs estructurados de la aplicación. Envuelve zerolog para
// que los paquetes de dominio no importen la librería directamente.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según Config. En development escribe consola legible
// por humanos; en cualquier otro entorno, JSON por línea. También fija el
// logger global de zerolog, para librerías que loguean por esa vía.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Writer != nil {
		w = cfg.Writer
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
