package main

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/zap"
)

// zapTrace routes the tracing of the library packages to the program log.
type zapTrace struct {
	log   *zap.SugaredLogger
	level tracing.TraceLevel
}

var _ tracing.Trace = (*zapTrace)(nil)

func (t *zapTrace) Errorf(s string, args ...interface{}) {
	t.log.Errorf(s, args...)
}

func (t *zapTrace) Infof(s string, args ...interface{}) {
	if t.level >= tracing.LevelInfo {
		t.log.Infof(s, args...)
	}
}

func (t *zapTrace) Debugf(s string, args ...interface{}) {
	if t.level >= tracing.LevelDebug {
		t.log.Debugf(s, args...)
	}
}

func (t *zapTrace) P(key string, val interface{}) tracing.Trace {
	return &zapTrace{log: t.log.With(key, val), level: t.level}
}

func (t *zapTrace) SetTraceLevel(l tracing.TraceLevel) { t.level = l }
func (t *zapTrace) GetTraceLevel() tracing.TraceLevel  { return t.level }

// SetOutput is a no-op: output is owned by the logger's core.
func (t *zapTrace) SetOutput(io.Writer) {}

// zapSelector hands out one named tracer per trace key, e.g. "mindom.css".
type zapSelector struct {
	log   *zap.Logger
	level tracing.TraceLevel
}

func (sel zapSelector) Select(key string) tracing.Trace {
	return &zapTrace{log: sel.log.Named(key).Sugar(), level: sel.level}
}

// installTracing makes the library packages trace to log. Without debug,
// only errors are traced.
func installTracing(log *zap.Logger, debug bool) {
	level := tracing.LevelError
	if debug {
		level = tracing.LevelDebug
	}
	tracing.SetTraceSelector(zapSelector{log: log, level: level})
}
