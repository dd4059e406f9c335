package zapx

import (
	"errors"
	"sync/atomic"
)

const (
	DebugLevel uint32 = iota
	InfoLevel
	ErrorLevel
)

const (
	accessFilename = "access.log"
	errorFilename  = "error.log"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelError = "error"
)

const (
	callerKey    = "caller"
	contentKey   = "content"
	durationKey  = "duration"
	levelKey     = "level"
	timestampKey = "@timestamp"
)

var (
	ErrLogPathNotSet        = errors.New("log path must be set")
	ErrLogServiceNameNotSet = errors.New("log service name must be set")
)

var logLevel uint32 = ErrorLevel

func setLogLevel(level string) {
	switch level {
	case levelDebug:
		atomic.StoreUint32(&logLevel, DebugLevel)
	case levelInfo:
		atomic.StoreUint32(&logLevel, InfoLevel)
	case levelError:
		atomic.StoreUint32(&logLevel, ErrorLevel)
	}
}

func shallLog(level uint32) bool {
	return atomic.LoadUint32(&logLevel) <= level
}
