package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tedwangl/go-basics/pkg/cobrax"
	"github.com/tedwangl/go-basics/pkg/demo"
	"github.com/tedwangl/go-basics/pkg/logger/zapx"
	"github.com/tedwangl/go-basics/pkg/utils"
)

const negativeHint = "负数参数需放在 -- 之后，例如：basics %s -- -26"

func printResult(cmd *cobra.Command, name string, args []any, v any) {
	zapx.Debugw("result",
		zapx.Field("name", name),
		zapx.Field("input", demo.FormatArgs(args)),
		zapx.Field("value", v),
	)
	fmt.Fprintln(cmd.OutOrStdout(), demo.Format(v))
}

// unaryIntCommand 接收一个整数参数的命令
func unaryIntCommand[T any](tool *cobrax.Tool, use, short string, fn func(int) T) *cobrax.Command {
	cmd := tool.NewCommand(
		use+" <x>",
		short,
		short+"\n\n"+fmt.Sprintf(negativeHint, use),
		cobrax.CmdRunnerFunc(func(cmd *cobra.Command, args []string) error {
			x, err := parseInt("x", args[0])
			if err != nil {
				return err
			}
			printResult(cmd, use, []any{x}, fn(x))
			return nil
		}),
	)
	cmd.Args = cobra.ExactArgs(1)
	return cmd
}

// RegisterNumberCommands 注册数值相关命令
func RegisterNumberCommands(tool *cobrax.Tool) {
	numbers := cobrax.NewCommandGroup("numbers")

	successorCmd := unaryIntCommand(tool, "successor", "返回 x+1", utils.Successor)
	successor2Cmd := unaryIntCommand(tool, "successor2", "返回 x+2", utils.Successor2)
	evenCmd := unaryIntCommand(tool, "even", "判断 x 是否为偶数", utils.IsEven)
	oddCmd := unaryIntCommand(tool, "odd", "判断 x 是否为奇数（向下取整取模，负奇数同样为 true）", utils.IsOdd)
	signumCmd := unaryIntCommand(tool, "signum", "返回 x 的符号 -1、0 或 1", utils.Signum)

	differenceCmd := tool.NewCommand(
		"difference <x> <y>",
		"返回 |x-y|",
		"返回两个整数差的绝对值\n\n"+fmt.Sprintf(negativeHint, "difference"),
		cobrax.CmdRunnerFunc(func(cmd *cobra.Command, args []string) error {
			x, err := parseInt("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseInt("y", args[1])
			if err != nil {
				return err
			}
			printResult(cmd, "difference", []any{x, y}, utils.Difference(x, y))
			return nil
		}),
	)
	differenceCmd.Args = cobra.ExactArgs(2)

	turnsCmd := tool.NewCommand(
		"turns",
		"计算车轮转动圈数",
		"从 start 公里行驶到 end 公里，半径为 radius 米的车轮需要转动的圈数",
		cobrax.CmdRunnerFunc(func(cmd *cobra.Command, args []string) error {
			start, _ := cmd.Flags().GetFloat64("start")
			end, _ := cmd.Flags().GetFloat64("end")
			radius, _ := cmd.Flags().GetFloat64("radius")
			n, err := utils.Turns(start, end, radius)
			if err != nil {
				return err
			}
			printResult(cmd, "turns", []any{start, end, radius}, n)
			return nil
		}),
	)
	turnsCmd.Args = cobra.NoArgs
	turnsCmd.AddFlags(
		cobrax.Flag{Name: "start", Shorthand: "s", DefaultValue: 0.0, Usage: "起始里程（公里）"},
		cobrax.Flag{Name: "end", Shorthand: "e", DefaultValue: 0.0, Usage: "结束里程（公里）"},
		cobrax.Flag{Name: "radius", Shorthand: "r", DefaultValue: 0.0, Usage: "车轮半径（米），必须为正数"},
	)
	turnsCmd.AddParamValidator("radius", &cobrax.PositiveValidator{Message: "radius 必须为正数"})

	numbers.AddCommand(successorCmd, successor2Cmd, evenCmd, oddCmd, differenceCmd, signumCmd, turnsCmd)
	tool.AddGroupLogic(numbers)
}
