// Package seqbuffer implements a cursor based binary buffer for go
//
// A SequentialBuffer wraps a single contiguous byte slice and keeps a position,
// a limit and a mark over it, in the same way a java.nio.ByteBuffer does. All
// typed reads and writes go through the current position, so encoding a
// sequence of values never needs manual offset bookkeeping
//
//	b, _ := seqbuffer.NewSequentialBuffer(16, seqbuffer.WithAutoGrow(true))
//	b.MustWriteUint16BE(5).MustWriteString("hello")
//	b.Flip()
//	n := b.MustNextUint16BE()
//	s := b.MustNextString(int(n))
//
// Writes past the capacity either fail with ErrCapacityExceeded or, when a
// growth factor is configured, reallocate the slice and keep everything
// already written. Reads never grow the buffer.
//
// A SequentialBuffer is not safe for concurrent use.
//
// Some examples on using the API are implemented as executable go programs in the
// `examples` subdirectory.
package seqbuffer

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

// logging gates the growth and configuration messages, it is off unless
// SEQBUFFER_LOGGING or EnableLogging turns it on
var logging bool

// logSinks receive every message of the package logger
var logSinks = []zapcore.WriteSyncer{os.Stdout}

var logger *zap.Logger

var logEncoding = zapcore.EncoderConfig{
	TimeKey:       "ts",
	LevelKey:      "level",
	NameKey:       "logger",
	MessageKey:    "msg",
	StacktraceKey: "stacktrace",
	EncodeLevel:   zapcore.LowercaseLevelEncoder,
	EncodeTime:    zapcore.ISO8601TimeEncoder,
	EncodeName:    zapcore.FullNameEncoder,
}

// EnableLogging switches buffer logging on or off
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter appends writer to the sinks of the buffer logger
func AddLogWriter(writer io.Writer) {
	logSinks = append(logSinks, zapcore.AddSync(writer))
	buildLogger()
}

// SetLogWriters replaces the sinks of the buffer logger with writers
func SetLogWriters(writers ...io.Writer) {
	sinks := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		sinks = append(sinks, zapcore.AddSync(w))
	}

	logSinks = sinks
	buildLogger()
}

// buildLogger recreates the logger over the current sinks
func buildLogger() {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(logEncoding),
		zap.CombineWriteSyncers(logSinks...),
		zapcore.InfoLevel,
	)
	logger = zap.New(core).Named("seqbuffer")
}

func init() {
	logging = false
	buildLogger()

	if err := initConfig(); err != nil && logging {
		logger.Error("ignoring invalid buffer defaults",
			zap.String("conf", confPath),
			zap.Error(err),
		)
	}
}
