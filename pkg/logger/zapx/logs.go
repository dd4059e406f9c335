package zapx

import (
	"path"
	"time"
)

func Debugw(msg string, fields ...LogField) {
	if shallLog(DebugLevel) {
		getWriter().Debug(msg, mergeFields(fields...)...)
	}
}

func Errorw(msg string, fields ...LogField) {
	if shallLog(ErrorLevel) {
		getWriter().Error(msg, mergeFields(fields...)...)
	}
}

func Infow(msg string, fields ...LogField) {
	if shallLog(InfoLevel) {
		getWriter().Info(msg, mergeFields(fields...)...)
	}
}

// SetUp 按配置初始化全局日志，只生效一次，Reset 后可再次调用
func SetUp(c LogConf) error {
	setupLock.Lock()
	once := setupOnce
	setupLock.Unlock()

	var err error
	once.Do(func() {
		setLogLevel(c.Level)

		if len(c.TimeFormat) > 0 {
			timeFormat = c.TimeFormat
		}

		switch c.Mode {
		case "file":
			err = setupWithFiles(c)
		case "volume":
			err = setupWithVolume(c)
		default:
			SetWriter(newConsoleWriter(c))
		}
	})

	return err
}

// WithDuration 返回携带 duration 字段的日志器
func WithDuration(d time.Duration) Logger {
	return newLogger(getWriter()).WithDuration(d)
}

func setupWithFiles(c LogConf) error {
	w, err := newFileWriter(c)
	if err != nil {
		return err
	}

	SetWriter(w)
	return nil
}

// volume 模式按服务名分目录，多个服务共享同一个挂载卷
func setupWithVolume(c LogConf) error {
	if len(c.ServiceName) == 0 {
		return ErrLogServiceNameNotSet
	}

	c.Path = path.Join(c.Path, c.ServiceName)
	return setupWithFiles(c)
}
