// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/projtree/projtree/internal/commands"
	"github.com/projtree/projtree/internal/config"
	"github.com/projtree/projtree/internal/output"
	"github.com/projtree/projtree/internal/types"
)

const (
	rootUse              = "projtree [directory]"
	rootShortDescription = "print a filtered tree of a project directory"
	rootLongDescription  = `projtree prints a recursive visual tree of a directory, skipping the
directory and file names listed in an exclusions file. Directories whose name
matches an excluded name are pruned entirely, and unreadable directories show
up as permission warnings instead of aborting the scan.`
	rootUsageExample = `  # Scan a directory directly
  projtree ./src

  # Prompt for the directory, reading exclusions from a custom file
  projtree --config ./exclusions.json`

	initUse              = "init"
	initShortDescription = "write a starter exclusions file"
	initLongDescription  = `Write a starter exclusions file covering common project noise
(version control metadata, virtual environments, dependency caches) to the
effective configuration path.`

	configFlagName        = "config"
	configFlagDescription = "path to the exclusions file (default " + config.DefaultExclusionsFileName + " beside the program binary)"
	forceFlagName         = "force"
	forceFlagDescription  = "overwrite an existing exclusions file"

	initializedMessageFormat = "Wrote exclusions file to %s\n"
	// scanInterruptedFormat reports a scan abandoned before completion.
	scanInterruptedFormat = "scan interrupted: %w"
)

// NewRootCommand builds the projtree command tree. The supplied logger is
// the warning channel handed to the exclusions loader.
func NewRootCommand(applicationLogger *zap.Logger) *cobra.Command {
	var exclusionsPathFlag string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runScan(command, arguments, exclusionsPathFlag, applicationLogger)
		},
	}
	rootCommand.PersistentFlags().StringVar(&exclusionsPathFlag, configFlagName, "", configFlagDescription)
	rootCommand.AddCommand(createInitCommand(&exclusionsPathFlag))
	return rootCommand
}

// runScan performs one scan: resolve the exclusions resource, collect the
// root directory, build the tree, and render it to the command's stdout.
func runScan(command *cobra.Command, arguments []string, exclusionsPathFlag string, applicationLogger *zap.Logger) error {
	exclusionsPath := exclusionsPathFlag
	if exclusionsPath == "" {
		exclusionsPath = config.DefaultExclusionsPath()
	}
	exclusions := config.LoadExclusions(exclusionsPath, applicationLogger)

	var rootDirectoryPath string
	if len(arguments) > 0 {
		resolvedPath, validationError := resolveAndValidateRoot(arguments[0])
		if validationError != nil {
			return validationError
		}
		rootDirectoryPath = resolvedPath
	} else {
		promptedPath, promptError := promptForRootDirectory(command.InOrStdin(), command.OutOrStdout())
		if promptError != nil {
			return promptError
		}
		rootDirectoryPath = promptedPath
	}

	interruptContext, stopSignalHandling := signal.NotifyContext(command.Context(), os.Interrupt)
	defer stopSignalHandling()

	builtTree, buildError := dispatchScan(interruptContext, commands.NewTreeBuilder(exclusions), rootDirectoryPath)
	if buildError != nil {
		return buildError
	}
	return output.WriteTree(command.OutOrStdout(), builtTree)
}

// dispatchScan runs the synchronous scan in its own goroutine so that an
// interrupt can abandon the partially built tree: on cancellation nothing is
// rendered and the command fails with a non-zero exit.
func dispatchScan(ctx context.Context, treeBuilder *commands.TreeBuilder, rootDirectoryPath string) (*types.TreeNode, error) {
	if contextError := ctx.Err(); contextError != nil {
		return nil, fmt.Errorf(scanInterruptedFormat, contextError)
	}
	scanGroup, scanContext := errgroup.WithContext(ctx)
	scanResults := make(chan *types.TreeNode, 1)
	scanGroup.Go(func() error {
		scanResults <- treeBuilder.BuildTree(rootDirectoryPath)
		return nil
	})
	select {
	case <-scanContext.Done():
		return nil, fmt.Errorf(scanInterruptedFormat, scanContext.Err())
	case builtTree := <-scanResults:
		return builtTree, scanGroup.Wait()
	}
}

// createInitCommand returns the init subcommand.
func createInitCommand(exclusionsPathFlag *string) *cobra.Command {
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			writtenPath, initializeError := config.InitializeExclusions(config.InitOptions{
				DestinationPath: *exclusionsPathFlag,
				Force:           forceOverwrite,
			})
			if initializeError != nil {
				return initializeError
			}
			fmt.Fprintf(command.OutOrStdout(), initializedMessageFormat, writtenPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}
