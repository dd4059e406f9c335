package cobrax

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// AddCommand 为Command添加子命令
func (c *Command) AddCommand(subcommands ...*Command) {
	for _, subcmd := range subcommands {
		c.Command.AddCommand(subcmd.Command)
	}
}

// AddFlag 添加标志，类型由默认值决定
func (c *Command) AddFlag(name, shorthand string, defaultValue any, usage string) {
	switch val := defaultValue.(type) {
	case string:
		c.Command.Flags().StringP(name, shorthand, val, usage)
	case int:
		c.Command.Flags().IntP(name, shorthand, val, usage)
	case int64:
		c.Command.Flags().Int64P(name, shorthand, val, usage)
	case float64:
		c.Command.Flags().Float64P(name, shorthand, val, usage)
	case bool:
		c.Command.Flags().BoolP(name, shorthand, val, usage)
	case []string:
		c.Command.Flags().StringSliceP(name, shorthand, val, usage)
	default:
		panic(fmt.Sprintf("cobrax: unsupported flag type %T for %q", defaultValue, name))
	}
}

// AddFlags 批量添加标志
func (c *Command) AddFlags(flags ...Flag) {
	for _, flag := range flags {
		c.AddFlag(flag.Name, flag.Shorthand, flag.DefaultValue, flag.Usage)
	}
}

// NewCommandGroup 创建命令组
func NewCommandGroup(name string) *CommandGroup {
	return &CommandGroup{
		Name:     name,
		Commands: []*Command{},
	}
}

// AddCommand 添加命令到组
func (g *CommandGroup) AddCommand(cmds ...*Command) {
	g.Commands = append(g.Commands, cmds...)
	for _, cmd := range cmds {
		cmd.GroupID = g.Name
	}
}

// PrintCommandTree 打印命令树形结构
func (t *Tool) PrintCommandTree() string {
	var b strings.Builder
	b.WriteString(t.rootCmd.Name())
	b.WriteString("\n")

	children := visibleCommands(t.rootCmd.Command)
	var groupOrder []string
	grouped := make(map[string][]*cobra.Command)
	var ungrouped []*cobra.Command
	for _, sub := range children {
		if sub.GroupID == "" {
			ungrouped = append(ungrouped, sub)
			continue
		}
		if _, ok := grouped[sub.GroupID]; !ok {
			groupOrder = append(groupOrder, sub.GroupID)
		}
		grouped[sub.GroupID] = append(grouped[sub.GroupID], sub)
	}

	// 先打印分组命令，再打印未分组命令
	total := len(groupOrder) + len(ungrouped)
	index := 0
	for _, id := range groupOrder {
		last := index == total-1
		b.WriteString(connector(last) + "[" + id + "]\n")
		cmds := grouped[id]
		for i, sub := range cmds {
			printTree(&b, sub, childPrefix("", last), i == len(cmds)-1)
		}
		index++
	}
	for _, sub := range ungrouped {
		printTree(&b, sub, "", index == total-1)
		index++
	}

	return b.String()
}

// printTree 递归打印命令树
func printTree(b *strings.Builder, cmd *cobra.Command, prefix string, isLast bool) {
	b.WriteString(prefix + connector(isLast) + cmd.Name() + "\n")

	subs := visibleCommands(cmd)
	for i, sub := range subs {
		printTree(b, sub, childPrefix(prefix, isLast), i == len(subs)-1)
	}
}

// 过滤掉内置命令
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var result []*cobra.Command
	for _, sub := range cmd.Commands() {
		switch sub.Name() {
		case "completion", "help", "tree", "version":
			continue
		}
		result = append(result, sub)
	}
	return result
}

func connector(isLast bool) string {
	if isLast {
		return "└── "
	}
	return "├── "
}

func childPrefix(prefix string, isLast bool) string {
	if isLast {
		return prefix + "    "
	}
	return prefix + "│   "
}
