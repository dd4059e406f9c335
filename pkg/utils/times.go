package utils

import "time"

// ElapsedTimer 用于跟踪经过时间的计时器
type ElapsedTimer struct {
	start time.Time
}

// NewElapsedTimer 创建并返回一个 ElapsedTimer
// 用法示例：
//
//	timer := NewElapsedTimer()
//	_ = demo.Run(os.Stdout)
//	zapx.WithDuration(timer.Duration()).Infow("demo finished")
func NewElapsedTimer() *ElapsedTimer {
	return &ElapsedTimer{
		start: time.Now(),
	}
}

// Duration 返回经过的时间
func (et *ElapsedTimer) Duration() time.Duration {
	return time.Since(et.start)
}
