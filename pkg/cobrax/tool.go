package cobrax

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/tedwangl/go-basics/pkg/logger/zapx"
	"github.com/tedwangl/go-basics/pkg/utils"
)

// NewTool 创建一个新的命令行工具
func NewTool(name, version, desc string) *Tool {
	rootCmd := &Command{
		Command: &cobra.Command{
			Use:   name,
			Short: desc,
			Long:  desc,
			// 错误统一交给 errHandler 输出
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}

	tool := &Tool{
		rootCmd:    rootCmd,
		name:       name,
		version:    version,
		desc:       desc,
		errHandler: DefaultErrorHandler,
		envPrefix:  "CLI", // 默认环境变量前缀
	}

	tool.AddVersionCommand()
	tool.AddTreeCommand()
	tool.SetGlobalFlags()
	tool.SetConfig("", nil)
	return tool
}

// SetErrorHandler 设置全局错误处理函数
func (t *Tool) SetErrorHandler(handler ErrorHandler) {
	if handler != nil {
		t.errHandler = handler
	}
}

// SetOutput 设置标准输出和错误输出，便于测试
func (t *Tool) SetOutput(out, errOut io.Writer) {
	t.rootCmd.SetOut(out)
	t.rootCmd.SetErr(errOut)
}

// SetRootRunner 设置不带子命令时执行的逻辑
func (t *Tool) SetRootRunner(runner CmdRunner) {
	t.rootCmd.Runner = runner
	t.rootCmd.RunE = t.runE(t.rootCmd)
}

// AddVersionCommand 添加版本命令
func (t *Tool) AddVersionCommand() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "显示工具版本信息",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", t.name, t.version)
		},
	}
	t.rootCmd.Command.AddCommand(versionCmd)
}

// AddTreeCommand 添加树形结构命令
func (t *Tool) AddTreeCommand() {
	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "显示命令树形结构",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), t.PrintCommandTree())
		},
	}
	t.rootCmd.Command.AddCommand(treeCmd)
}

// SetGlobalFlags 设置全局标志
func (t *Tool) SetGlobalFlags() {
	t.rootCmd.PersistentFlags().BoolP("verbose", "v", false, "显示详细信息")
	t.rootCmd.PersistentFlags().BoolP("debug", "d", false, "显示调试信息")
	t.rootCmd.PersistentFlags().StringP("config", "c", "", "配置文件路径")
}

// Execute 执行命令，返回进程退出码
func (t *Tool) Execute() int {
	return t.ExecuteArgs(nil)
}

// ExecuteArgs 使用指定参数执行命令，args 为 nil 时使用 os.Args
func (t *Tool) ExecuteArgs(args []string) (code int) {
	if args != nil {
		t.rootCmd.SetArgs(args)
	}

	defer func() {
		if r := recover(); r != nil {
			zapx.Errorw("程序崩溃",
				zapx.Field("panic", fmt.Sprint(r)),
				zapx.Field("stack", string(debug.Stack())),
			)
			fmt.Fprintf(t.rootCmd.ErrOrStderr(), "程序崩溃: %v\n", r)
			code = 1
		}
	}()

	cmd, err := t.rootCmd.Command.ExecuteC()
	if err != nil {
		if cmd == nil {
			cmd = t.rootCmd.Command
		}
		if t.errHandler != nil {
			_ = t.errHandler(err, cmd)
		}
		return 1
	}
	return 0
}

// NewCommand 创建一个新的子命令
func (t *Tool) NewCommand(use, short, long string, runner CmdRunner, subCmds ...*Command) *Command {
	cmd := &Command{
		Command: &cobra.Command{
			Use:   use,
			Short: short,
			Long:  long,
		},
		Runner:     runner,
		validators: make(map[string][]ParamValidator),
	}
	cmd.RunE = t.runE(cmd)

	for _, subCmd := range subCmds {
		cmd.AddCommand(subCmd)
	}

	return cmd
}

func (t *Tool) runE(cmd *Command) func(*cobra.Command, []string) error {
	return func(cobraCmd *cobra.Command, args []string) error {
		// 执行参数校验
		if err := cmd.ValidateFlags(); err != nil {
			zapx.Infow("参数校验失败",
				zapx.Field("command", cobraCmd.CommandPath()),
				zapx.Field("error", err.Error()),
			)
			return err
		}

		if cmd.Runner == nil {
			return cobraCmd.Help()
		}

		zapx.Infow("执行命令", zapx.Field("command", cobraCmd.CommandPath()))
		timer := utils.NewElapsedTimer()
		err := cmd.Runner.Run(cobraCmd, args)
		zapx.WithDuration(timer.Duration()).Infow("命令结束",
			zapx.Field("command", cobraCmd.CommandPath()),
			zapx.Field("ok", err == nil),
		)
		return err
	}
}

// AddCommand 添加命令到工具
func (t *Tool) AddCommand(cmds ...*Command) {
	for _, cmd := range cmds {
		t.rootCmd.Command.AddCommand(cmd.Command)
	}
}

// AddGroupLogic 添加逻辑分组（仅用于帮助信息分类）
func (t *Tool) AddGroupLogic(cmdGroup *CommandGroup) {
	title := cmdGroup.Title
	if title == "" {
		title = utils.Capitalize(cmdGroup.Name) + " Commands"
	}
	t.rootCmd.Command.AddGroup(&cobra.Group{ID: cmdGroup.Name, Title: title})

	for _, cmd := range cmdGroup.Commands {
		cmd.Command.GroupID = cmdGroup.Name
		t.rootCmd.Command.AddCommand(cmd.Command)
	}
}

// IsVerbose 获取 verbose 标志值
func (t *Tool) IsVerbose() bool {
	verbose, _ := t.rootCmd.PersistentFlags().GetBool("verbose")
	return verbose
}

// IsDebug 获取 debug 标志值
func (t *Tool) IsDebug() bool {
	enabled, _ := t.rootCmd.PersistentFlags().GetBool("debug")
	return enabled
}

// SetEnvPrefix 设置环境变量前缀（默认为 "CLI"）
func (t *Tool) SetEnvPrefix(prefix string) {
	t.envPrefix = prefix
}
