package commands

import (
	"fmt"
	"strconv"

	"github.com/tedwangl/go-basics/pkg/cobrax"
	"github.com/tedwangl/go-basics/pkg/demo"
	"github.com/tedwangl/go-basics/pkg/logger/zapx"
	"github.com/tedwangl/go-basics/pkg/utils/uuid"
	"github.com/tedwangl/go-basics/pkg/viperx"
)

// AppConfig 配置文件结构
type AppConfig struct {
	Log    zapx.LogConf `mapstructure:"log"`
	Format string       `mapstructure:"format"`
	Labels bool         `mapstructure:"labels"`
}

// Defaults 配置默认值，环境变量 BASICS_* 只对这里出现过的 key 生效
func Defaults() map[string]any {
	d := zapx.DefaultLogConf()
	return map[string]any{
		"log.service_name": "basics",
		"log.mode":         d.Mode,
		"log.encoding":     d.Encoding,
		"log.level":        d.Level,
		"log.output":       d.Output,
		"log.path":         d.Path,
		"log.rotation":     d.Rotation,
		"log.max_size":     d.MaxSize,
		"log.max_backups":  d.MaxBackups,
		"log.keep_days":    d.KeepDays,
		"log.compress":     d.Compress,
		"log.time_format":  d.TimeFormat,
		"format":           demo.FormatText,
		"labels":           false,
	}
}

// NewTool 创建 basics 命令行工具并注册所有命令
func NewTool(version, cfgFile string) *cobrax.Tool {
	tool := cobrax.NewTool("basics", version, "入门练习函数集：后继、奇偶、差值、符号、车轮圈数和字符串处理")
	tool.SetEnvPrefix("BASICS")
	tool.SetConfig(cfgFile, Defaults())
	tool.OnConfigLoaded(setupLogging(tool))
	tool.WatchConfig()

	RegisterDemoCommands(tool)
	RegisterNumberCommands(tool)
	RegisterStringCommands(tool)
	return tool
}

// setupLogging 按配置初始化日志，--debug / --verbose 优先于配置文件中的级别
// 配置文件变化时会再次执行
func setupLogging(tool *cobrax.Tool) cobrax.ConfigHook {
	return func(cfg *viperx.Config) error {
		var app AppConfig
		if err := cfg.Unmarshal(&app); err != nil {
			return fmt.Errorf("解析配置失败: %w", err)
		}

		switch {
		case tool.IsDebug():
			app.Log.Level = "debug"
		case tool.IsVerbose():
			app.Log.Level = "info"
		}

		return applyLogConf(app.Log, cfg.ConfigFileUsed())
	}
}

func applyLogConf(c zapx.LogConf, file string) error {
	if old := zapx.Reset(); old != nil {
		_ = old.Close()
	}
	if err := zapx.SetUp(c); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	zapx.AddGlobalFields(zapx.Field("run_id", uuid.NewRunID()))
	zapx.Debugw("配置已加载", zapx.Field("file", file), zapx.Field("level", c.Level))
	return nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("参数 %s 不是整数: %q", name, s)
	}
	return v, nil
}
