package zapx

import (
	"sync"
	"sync/atomic"
)

// LogField 日志字段
type LogField struct {
	Key   string
	Value any
}

var (
	globalFields     atomic.Value
	globalFieldsLock sync.Mutex
)

func Field(key string, value any) LogField {
	return LogField{
		Key:   key,
		Value: value,
	}
}

// AddGlobalFields 添加全局字段，之后的每条日志都会携带
func AddGlobalFields(fields ...LogField) {
	globalFieldsLock.Lock()
	defer globalFieldsLock.Unlock()

	old, _ := globalFields.Load().([]LogField)
	merged := make([]LogField, 0, len(old)+len(fields))
	merged = append(merged, old...)
	globalFields.Store(append(merged, fields...))
}

func resetGlobalFields() {
	globalFieldsLock.Lock()
	defer globalFieldsLock.Unlock()
	globalFields.Store([]LogField(nil))
}

func mergeFields(fields ...LogField) []LogField {
	globals, _ := globalFields.Load().([]LogField)
	if len(globals) == 0 {
		return fields
	}

	result := make([]LogField, 0, len(globals)+len(fields))
	result = append(result, globals...)
	return append(result, fields...)
}
