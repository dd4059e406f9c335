package cobrax

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tedwangl/go-basics/pkg/logger/zapx"
)

var errColor = color.New(color.FgRed, color.Bold)

// DefaultErrorHandler 默认错误处理函数
func DefaultErrorHandler(err error, cmd *cobra.Command) error {
	if err != nil {
		w := cmd.ErrOrStderr()
		errColor.Fprintf(w, "Error: %v\n\n", err)
		// usage 与错误信息一起写到 stderr
		fmt.Fprint(w, cmd.UsageString())
	}
	return err
}

// LoggingErrorHandler 带日志记录的错误处理函数
func LoggingErrorHandler() ErrorHandler {
	return func(err error, cmd *cobra.Command) error {
		if err != nil {
			zapx.Errorw("命令执行失败",
				zapx.Field("command", cmd.CommandPath()),
				zapx.Field("error", err.Error()),
			)
		}
		return DefaultErrorHandler(err, cmd)
	}
}
