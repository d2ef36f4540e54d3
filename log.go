package qoi

import (
	"os"

	"github.com/rs/zerolog"
)

// log is the package-scoped logger. Embedding applications can redirect it
// with SetLogger; the zero value writes nothing below warn level so steady
// state is quiet by default.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	Level(zerolog.WarnLevel).
	With().
	Timestamp().
	Str("component", "qoi").
	Logger()

// SetLogger replaces the package logger, letting a caller route codec
// diagnostics into its own logging pipeline.
func SetLogger(l zerolog.Logger) {
	log = l
}

// traceChunk logs a chunk decision at debug level. The enabled check runs
// before any argument is computed so disabled debug logging costs nothing in
// the hot encode/decode loop.
func traceChunk(kind string, p Pixel) {
	if !log.Debug().Enabled() {
		return
	}
	log.Debug().
		Str("op", kind).
		Uint8("r", p.R).Uint8("g", p.G).Uint8("b", p.B).Uint8("a", p.A).
		Msg("chunk")
}

func warnRunClipped(length int) {
	log.Warn().Int("length", length).Msg("run clipped to the remaining pixel count")
}
