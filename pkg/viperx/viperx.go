package viperx

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type (
	// Config 配置管理器
	Config struct {
		v        *viper.Viper
		onChange func()
	}

	// Option 配置选项
	Option func(*Config)
)

// New 创建配置管理器
// 优先级：环境变量 > 配置文件 > 默认值
func New(opts ...Option) *Config {
	c := &Config{
		v: viper.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithFile 指定配置文件，支持 yaml, json, toml 等
// 空路径会被忽略
func WithFile(path string) Option {
	return func(c *Config) {
		if path == "" {
			return
		}
		c.v.SetConfigFile(path)
	}
}

// WithEnvPrefix 设置环境变量前缀
// 例如：WithEnvPrefix("BASICS") 会读取 BASICS_LOG_LEVEL 覆盖 log.level
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.v.SetEnvPrefix(prefix)
		c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		c.v.AutomaticEnv()
	}
}

// WithDefaults 设置默认值
func WithDefaults(defaults map[string]any) Option {
	return func(c *Config) {
		for key, value := range defaults {
			c.v.SetDefault(key, value)
		}
	}
}

// WithOnChange 设置配置文件变化回调，Load 时启动监听
// 回调在监听协程中执行，此时配置已重新读取
func WithOnChange(callback func()) Option {
	return func(c *Config) {
		c.onChange = callback
	}
}

// Load 读取配置文件，文件不存在时只使用默认值和环境变量
func (c *Config) Load() error {
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		return nil
	}

	if c.onChange != nil {
		c.v.OnConfigChange(func(e fsnotify.Event) {
			c.onChange()
		})
		c.v.WatchConfig()
	}

	return nil
}

// Unmarshal 解析配置到结构体，环境变量按叶子 key 覆盖
func (c *Config) Unmarshal(v any) error {
	return c.v.Unmarshal(v)
}

// GetString 获取字符串配置
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetBool 获取布尔配置
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// ConfigFileUsed 返回实际读取的配置文件
func (c *Config) ConfigFileUsed() string {
	return c.v.ConfigFileUsed()
}

// Viper 获取底层 viper 实例，用于绑定命令行标志
func (c *Config) Viper() *viper.Viper {
	return c.v
}
