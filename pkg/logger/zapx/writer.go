package zapx

import (
	"fmt"
	"io"
	"os"
	"path"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Writer 日志写入器，级别过滤在调用 Writer 之前完成
type Writer interface {
	Close() error
	Debug(msg string, fields ...LogField)
	Error(msg string, fields ...LogField)
	Info(msg string, fields ...LogField)
}

type zapWriter struct {
	infoLogger  *zap.Logger
	errorLogger *zap.Logger
	sugarInfo   *zap.SugaredLogger
	sugarError  *zap.SugaredLogger
	closers     []io.Closer
}

type atomicWriter struct {
	writer Writer
	lock   sync.RWMutex
}

var (
	awriter    = &atomicWriter{}
	setupOnce  = &sync.Once{}
	setupLock  sync.Mutex
	timeFormat = "2006-01-02T15:04:05.000Z07:00"
)

func (w *atomicWriter) Load() Writer {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return w.writer
}

func (w *atomicWriter) Store(v Writer) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.writer = v
}

func (w *atomicWriter) Swap(v Writer) Writer {
	w.lock.Lock()
	defer w.lock.Unlock()
	old := w.writer
	w.writer = v
	return old
}

func getWriter() Writer {
	w := awriter.Load()
	if w == nil {
		w = NewConsoleWriter(DefaultLogConf(), os.Stderr)
		awriter.Store(w)
	}
	return w
}

// SetWriter 替换全局写入器
func SetWriter(w Writer) {
	awriter.Store(w)
}

// Reset 清空全局写入器并允许再次 SetUp，返回旧的写入器
func Reset() Writer {
	setupLock.Lock()
	setupOnce = &sync.Once{}
	setupLock.Unlock()
	resetGlobalFields()
	return awriter.Swap(nil)
}

func Close() error {
	if w := awriter.Swap(nil); w != nil {
		return w.Close()
	}
	return nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        timestampKey,
		LevelKey:       levelKey,
		NameKey:        "logger",
		CallerKey:      callerKey,
		MessageKey:     contentKey,
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeFormat),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func newEncoder(c LogConf) zapcore.Encoder {
	cfg := encoderConfig()
	if c.Encoding == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// NewConsoleWriter 创建输出到 out 的写入器
func NewConsoleWriter(c LogConf, out io.Writer) Writer {
	core := zapcore.NewCore(newEncoder(c), zapcore.AddSync(out), zapcore.DebugLevel)
	// zapx.Info -> zapWriter.Info -> sugar，跳过两层
	zapLogger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))
	if c.ServiceName != "" {
		zapLogger = zapLogger.With(zap.String("service", c.ServiceName))
	}

	return &zapWriter{
		infoLogger:  zapLogger,
		errorLogger: zapLogger,
		sugarInfo:   zapLogger.Sugar(),
		sugarError:  zapLogger.Sugar(),
	}
}

func newConsoleWriter(c LogConf) Writer {
	if c.Output == "stdout" {
		return NewConsoleWriter(c, os.Stdout)
	}
	return NewConsoleWriter(c, os.Stderr)
}

// newFileWriter access.log 记录 debug/info，error.log 记录 error
func newFileWriter(c LogConf) (Writer, error) {
	if len(c.Path) == 0 {
		return nil, ErrLogPathNotSet
	}

	if err := os.MkdirAll(c.Path, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", c.Path, err)
	}

	accessWriter := createRotateWriter(path.Join(c.Path, accessFilename), c)
	errorWriter := createRotateWriter(path.Join(c.Path, errorFilename), c)

	c.Encoding = "json"
	infoCore := zapcore.NewCore(newEncoder(c), zapcore.AddSync(accessWriter), zapcore.DebugLevel)
	errorCore := zapcore.NewCore(newEncoder(c), zapcore.AddSync(errorWriter), zapcore.DebugLevel)

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(2)}
	infoLogger := zap.New(infoCore, opts...)
	errorLogger := zap.New(errorCore, opts...)
	if c.ServiceName != "" {
		infoLogger = infoLogger.With(zap.String("service", c.ServiceName))
		errorLogger = errorLogger.With(zap.String("service", c.ServiceName))
	}

	return &zapWriter{
		infoLogger:  infoLogger,
		errorLogger: errorLogger,
		sugarInfo:   infoLogger.Sugar(),
		sugarError:  errorLogger.Sugar(),
		closers:     []io.Closer{accessWriter, errorWriter},
	}, nil
}

func (w *zapWriter) Close() error {
	var errs []error
	// 同步到终端时 Sync 可能返回 EINVAL，忽略
	_ = w.infoLogger.Sync()
	_ = w.errorLogger.Sync()
	for _, c := range w.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

func (w *zapWriter) Debug(msg string, fields ...LogField) {
	w.sugarInfo.Debugw(msg, toKeysAndValues(fields)...)
}

func (w *zapWriter) Error(msg string, fields ...LogField) {
	w.sugarError.Errorw(msg, toKeysAndValues(fields)...)
}

func (w *zapWriter) Info(msg string, fields ...LogField) {
	w.sugarInfo.Infow(msg, toKeysAndValues(fields)...)
}

// time.Duration 字段按 "1.5s" 格式输出
func toKeysAndValues(fields []LogField) []any {
	result := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		if d, ok := f.Value.(time.Duration); ok {
			result = append(result, zap.Duration(f.Key, d))
			continue
		}
		result = append(result, f.Key, f.Value)
	}
	return result
}
