package zapx

import "time"

// Logger 携带固定字段的日志器
type Logger interface {
	Infow(string, ...LogField)
	WithDuration(time.Duration) Logger
}

type baseLogger struct {
	writer Writer
	fields []LogField
}

func newLogger(writer Writer) *baseLogger {
	return &baseLogger{
		writer: writer,
	}
}

func (l *baseLogger) Infow(msg string, fields ...LogField) {
	if shallLog(InfoLevel) {
		l.writer.Info(msg, l.merge(fields)...)
	}
}

func (l *baseLogger) WithDuration(d time.Duration) Logger {
	fields := make([]LogField, len(l.fields), len(l.fields)+1)
	copy(fields, l.fields)
	return &baseLogger{
		writer: l.writer,
		fields: append(fields, Field(durationKey, d)),
	}
}

func (l *baseLogger) merge(fields []LogField) []LogField {
	all := mergeFields(l.fields...)
	if len(fields) == 0 {
		return all
	}
	result := make([]LogField, 0, len(all)+len(fields))
	result = append(result, all...)
	return append(result, fields...)
}
