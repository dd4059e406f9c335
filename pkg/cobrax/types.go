package cobrax

import (
	"github.com/spf13/cobra"

	"github.com/tedwangl/go-basics/pkg/viperx"
)

type (
	// ==================== 接口定义 ====================

	// CmdRunner 定义命令运行器接口
	CmdRunner interface {
		Run(cmd *cobra.Command, args []string) error
	}

	// ParamValidator 定义参数校验器接口
	ParamValidator interface {
		Validate(value any) error
	}

	// ErrorHandler 定义错误处理函数类型
	ErrorHandler func(err error, cmd *cobra.Command) error

	// ConfigHook 配置加载完成后的回调，常用于初始化日志
	ConfigHook func(cfg *viperx.Config) error

	// ==================== 核心类型 ====================

	// Tool 表示一个命令行工具，管理全局配置和命令集
	Tool struct {
		rootCmd    *Command
		name       string
		version    string
		desc       string
		errHandler ErrorHandler
		envPrefix  string // 环境变量前缀
		cfgFile    string
		defaults   map[string]any
		onConfig   ConfigHook
		watch      bool
		config     *viperx.Config
	}

	// Command 是对cobra.Command的包装，提供更简洁的API
	Command struct {
		*cobra.Command
		Runner     CmdRunner
		validators map[string][]ParamValidator
	}

	// ==================== 辅助类型 ====================

	// CmdRunnerFunc 是函数类型的CmdRunner实现
	CmdRunnerFunc func(cmd *cobra.Command, args []string) error

	// Flag 标志定义
	Flag struct {
		Name         string
		Shorthand    string
		DefaultValue any
		Usage        string
	}

	// CommandGroup 命令组
	CommandGroup struct {
		Name     string
		Title    string
		Commands []*Command
	}

	// ==================== 校验器类型 ====================

	// RequiredValidator 检查参数是否必填
	// AllowBlank 为 true 时只拒绝空字符串，全空白的值视为已填写
	RequiredValidator struct {
		Message    string
		AllowBlank bool
	}

	// PositiveValidator 检查数值是否为有限正数
	PositiveValidator struct {
		Message string
	}

	// OneOfValidator 检查字符串是否在可选值中
	OneOfValidator struct {
		Options []string
		Message string
	}
)

// Run 实现CmdRunner接口
func (f CmdRunnerFunc) Run(cmd *cobra.Command, args []string) error {
	return f(cmd, args)
}
