package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/projtree/projtree/internal/cli"
	"github.com/projtree/projtree/internal/utils"
)

// main is the entry point for the projtree command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()

	rootCommand := cli.NewRootCommand(loggerInstance)
	if applicationExecutionError := fang.Execute(
		context.Background(),
		rootCommand,
		fang.WithVersion(utils.GetApplicationVersion()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); applicationExecutionError != nil {
		_ = loggerInstance.Sync()
		os.Exit(1)
	}
}
