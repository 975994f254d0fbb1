package sink

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// traceLevel sits below zapcore.DebugLevel so the encoded event stream can
// be enabled independently of debug output.
const traceLevel = zapcore.DebugLevel - 1

// ZapSink is a Sink backed by Uber's Zap logger. Lines are written as
// structured JSON to stderr with the severity, the optional tag and the
// message.
//
// ZapSink implements the Sink interface.
type ZapSink struct {
	// Zap is the underlying zap.Logger instance, exposed for direct
	// access to Zap-specific functionality when needed.
	Zap *zap.Logger

	level zap.AtomicLevel
}

// NewZapSink initializes a Zap logger configured for instrumentation
// output and returns it wrapped as a sink.
//
// The logger is configured with:
//   - JSON encoding with ISO8601 timestamps and capital level names
//   - Process ID and logger name as initial fields
//   - Output directed to stderr
//
// If initialization fails, the function calls log.Fatal: a process that
// asked for instrumentation but cannot construct its sink has nothing
// sensible to continue with.
func NewZapSink(cfg Config) *ZapSink {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	level := zap.NewAtomicLevelAt(zapLevel(cfg.Level))

	zapCfg := zap.Config{
		Level:            level,
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid": os.Getpid(),
		},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Name != "" {
		logger = logger.Named(cfg.Name)
	}

	return &ZapSink{Zap: logger, level: level}
}

// FromZap wraps an existing zap logger as a sink. The logger's own core
// decides which severities are enabled.
func FromZap(logger *zap.Logger) *ZapSink {
	return &ZapSink{Zap: logger}
}

// Enabled reports whether the underlying core accepts the severity.
func (z *ZapSink) Enabled(s Severity) bool {
	return z.Zap.Core().Enabled(zapLevel(s))
}

// Log writes one line through the zap core. The tag, when present, is
// attached as a structured field.
func (z *ZapSink) Log(s Severity, tag, msg string) {
	ce := z.Zap.Check(zapLevel(s), msg)
	if ce == nil {
		return
	}
	if tag != "" {
		ce.Write(zap.String("tag", tag))
		return
	}
	ce.Write()
}

// SetLevel changes the minimum severity at runtime. Only sinks built by
// NewZapSink support this; FromZap sinks defer to their own core.
func (z *ZapSink) SetLevel(s Severity) {
	if z.level != (zap.AtomicLevel{}) {
		z.level.SetLevel(zapLevel(s))
	}
}

// Sync flushes any buffered lines to their destination.
func (z *ZapSink) Sync() error {
	return z.Zap.Sync()
}

func zapLevel(s Severity) zapcore.Level {
	switch s {
	case Trace:
		return traceLevel
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
