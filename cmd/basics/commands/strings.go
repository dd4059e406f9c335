package commands

import (
	"github.com/spf13/cobra"

	"github.com/tedwangl/go-basics/pkg/cobrax"
	"github.com/tedwangl/go-basics/pkg/utils"
)

// RegisterStringCommands 注册字符串相关命令
func RegisterStringCommands(tool *cobrax.Tool) {
	stringsGroup := cobrax.NewCommandGroup("strings")

	helloCmd := tool.NewCommand(
		"hello",
		"输出问候语",
		"输出 \"Hello \" 加上首字母大写的名字",
		cobrax.CmdRunnerFunc(func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			msg, err := utils.HelloName(name)
			if err != nil {
				return err
			}
			printResult(cmd, "helloName", []any{name}, msg)
			return nil
		}),
	)
	helloCmd.Args = cobra.NoArgs
	helloCmd.AddFlag("name", "n", "", "名字，不能为空")
	helloCmd.AddParamValidator("name", &cobrax.RequiredValidator{Message: "name 不能为空", AllowBlank: true})

	stringManCmd := tool.NewCommand(
		"stringman <text>",
		"判断字符串首尾",
		"以 'H' 开头输出 Starts with H；否则以 'A' 结尾输出 Ends with A；否则输出 Lame。区分大小写",
		cobrax.CmdRunnerFunc(func(cmd *cobra.Command, args []string) error {
			printResult(cmd, "stringMan", []any{args[0]}, utils.StringMan(args[0]))
			return nil
		}),
	)
	stringManCmd.Args = cobra.ExactArgs(1)

	stringsGroup.AddCommand(helloCmd, stringManCmd)
	tool.AddGroupLogic(stringsGroup)
}
