package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls the diagnostic logger.
type Options struct {
	// JSON switches to the JSON encoder so stderr stays machine-readable
	// alongside NDJSON stdout.
	JSON    bool
	Verbose bool
	Quiet   bool
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// New builds the diagnostic logger. Diagnostics never go to stdout.
func New(opts Options) *zap.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	var enc zapcore.Encoder
	if opts.JSON {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), Level(opts.Verbose, opts.Quiet))
	return zap.New(core)
}

// Level maps the verbose/quiet flags to a zap level. Verbose wins.
func Level(verbose, quiet bool) zapcore.Level {
	switch {
	case verbose:
		return zapcore.DebugLevel
	case quiet:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
