package main

import (
	"os"

	"github.com/tedwangl/go-basics/cmd/basics/commands"
	"github.com/tedwangl/go-basics/pkg/cobrax"
	"github.com/tedwangl/go-basics/pkg/logger/zapx"
)

var version = "1.0.0"

func main() {
	tool := commands.NewTool(version, os.ExpandEnv("$HOME/.basics/config.yaml"))
	tool.SetErrorHandler(cobrax.LoggingErrorHandler())
	tool.SetOutput(os.Stdout, os.Stderr)

	code := tool.Execute()
	_ = zapx.Close()
	os.Exit(code)
}
