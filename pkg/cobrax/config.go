package cobrax

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tedwangl/go-basics/pkg/logger/zapx"
	"github.com/tedwangl/go-basics/pkg/viperx"
)

// SetConfig 设置配置文件和默认值，命令执行前加载
// 优先级：命令行标志 > 环境变量 > 配置文件 > 默认值
func (t *Tool) SetConfig(cfgFile string, defaults map[string]any) {
	t.cfgFile = cfgFile
	t.defaults = defaults
	t.rootCmd.PersistentPreRunE = t.loadConfig
}

// OnConfigLoaded 配置加载完成后执行 hook
func (t *Tool) OnConfigLoaded(hook ConfigHook) {
	t.onConfig = hook
}

// WatchConfig 监听配置文件，文件变化后重新执行 OnConfigLoaded 设置的 hook
// 只在配置文件存在时生效
func (t *Tool) WatchConfig() {
	t.watch = true
}

// Config 返回已加载的配置，命令执行前为 nil
func (t *Tool) Config() *viperx.Config {
	return t.config
}

func (t *Tool) loadConfig(cmd *cobra.Command, args []string) error {
	cfgFile := t.cfgFile
	// 从命令行标志获取配置文件路径
	if flagConfig, _ := cmd.Flags().GetString("config"); flagConfig != "" {
		cfgFile = flagConfig
	}

	var cfg *viperx.Config
	opts := []viperx.Option{
		viperx.WithFile(cfgFile),
		viperx.WithEnvPrefix(t.envPrefix),
		viperx.WithDefaults(t.defaults),
	}
	if t.watch && t.onConfig != nil {
		hook := t.onConfig
		opts = append(opts, viperx.WithOnChange(func() {
			if err := hook(cfg); err != nil {
				zapx.Errorw("重新加载配置失败",
					zapx.Field("file", cfg.ConfigFileUsed()),
					zapx.Field("error", err.Error()),
				)
				return
			}
			zapx.Infow("配置已重新加载", zapx.Field("file", cfg.ConfigFileUsed()))
		}))
	}

	cfg = viperx.New(opts...)
	if err := cfg.Load(); err != nil {
		return err
	}

	if err := bindAllFlags(cfg, cmd); err != nil {
		return err
	}
	t.config = cfg

	if t.onConfig != nil {
		return t.onConfig(cfg)
	}
	return nil
}

// bindAllFlags 绑定命令及其父命令的所有标志
func bindAllFlags(cfg *viperx.Config, cmd *cobra.Command) error {
	if err := cfg.Viper().BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("绑定命令标志失败: %w", err)
	}

	// 包括父命令的 PersistentFlags
	if err := cfg.Viper().BindPFlags(cmd.InheritedFlags()); err != nil {
		return fmt.Errorf("绑定继承标志失败: %w", err)
	}

	return nil
}
