package commands

import (
	"github.com/spf13/cobra"

	"github.com/tedwangl/go-basics/pkg/cobrax"
	"github.com/tedwangl/go-basics/pkg/demo"
	"github.com/tedwangl/go-basics/pkg/logger/zapx"
	"github.com/tedwangl/go-basics/pkg/utils"
)

// RegisterDemoCommands 注册 demo 命令，不带子命令运行 basics 时同样执行 demo
func RegisterDemoCommands(tool *cobrax.Tool) {
	runner := cobrax.CmdRunnerFunc(func(cmd *cobra.Command, args []string) error {
		cfg := tool.Config()
		timer := utils.NewElapsedTimer()

		err := demo.Run(cmd.OutOrStdout(),
			demo.WithFormat(cfg.GetString("format")),
			demo.WithLabels(cfg.GetBool("labels")),
		)
		if err != nil {
			return err
		}

		zapx.WithDuration(timer.Duration()).Infow("demo finished",
			zapx.Field("scenarios", len(demo.Scenarios())),
		)
		return nil
	})

	demoCmd := tool.NewCommand(
		"demo",
		"按固定顺序输出所有练习函数的结果",
		"依次调用每个练习函数并逐行输出结果，格式为 text（默认）或 json",
		runner,
	)
	demoCmd.AddFlag("format", "f", demo.FormatText, "输出格式 text|json")
	demoCmd.AddFlag("labels", "l", false, "text 格式下输出函数名和参数")
	demoCmd.AddParamValidator("format", &cobrax.OneOfValidator{
		Options: []string{demo.FormatText, demo.FormatJSON},
	})

	tool.AddCommand(demoCmd)
	tool.SetRootRunner(runner)
}
