package zapx

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// rotation 为 size 时按 MaxSize(MB) 切割，否则 lumberjack 使用默认大小 100MB
func createRotateWriter(filename string, c LogConf) io.WriteCloser {
	maxSize := 0
	if c.Rotation == "size" {
		maxSize = c.MaxSize
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.KeepDays,
		Compress:   c.Compress,
	}
}
