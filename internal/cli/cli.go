// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/cmdscope/internal/cache"
	"github.com/temirov/cmdscope/internal/config"
	"github.com/temirov/cmdscope/internal/deploy"
	"github.com/temirov/cmdscope/internal/descriptor"
	"github.com/temirov/cmdscope/internal/discover"
	"github.com/temirov/cmdscope/internal/helptext"
	"github.com/temirov/cmdscope/internal/output"
	"github.com/temirov/cmdscope/internal/services/clipboard"
	"github.com/temirov/cmdscope/internal/types"
	"github.com/temirov/cmdscope/internal/utils"
)

const (
	includeHelpFlagName  = "include-help"
	indentFlagName       = "indent"
	noColorFlagName      = "no-color"
	prefixFlagName       = "prefix"
	skipCacheFlagName    = "skip-cache"
	versionFlagName      = "version"
	forceFlagName        = "force"
	globalFlagName       = "global"
	versionTemplate      = "cmdscope version: %s\n"
	rootUse              = "cmdscope"
	rootShortDescription = "cmdscope command line interface"
	rootLongDescription  = `cmdscope discovers the full command and option tree of a command-line program
by recursively invoking its help output, caches the result, and renders it as an
indented, optionally colorized listing.`
	versionFlagDescription = "display application version"

	listUse              = "list <binary>"
	listAlias            = "l"
	listShortDescription = "list the command tree of a binary (" + listAlias + ")"
	listLongDescription  = `Discover and print every command and option of the named binary.
The result is cached per binary; use --skip-cache to force fresh discovery.`
	listUsageExample = `  # List the command tree of mytool
  cmdscope list mytool

  # Rediscover, two-space indentation, no color
  cmdscope list mytool --skip-cache --indent 2 --no-color`

	deployUse              = "deploy"
	deployShortDescription = "deploy the current project to a configured target"
	awsS3Use               = "aws-s3"
	awsS3ShortDescription  = "sync the configured source directory to an S3 bucket"
	azureUse               = "azure-web-app"
	azureShortDescription  = "deploy the working directory to an Azure web app"

	configUse                   = "config"
	configShortDescription      = "manage cmdscope configuration"
	configInitUse               = "init"
	configInitShortDescription  = "write the default configuration file"
	globalFlagDescription       = "write the global configuration instead of a local one"
	forceFlagDescription        = "overwrite an existing configuration file"
	configInitSuccessFormat     = "configuration written to %s\n"
	includeHelpFlagDescription  = "include the generic help entries in the listing"
	indentFlagDescription       = "spaces per nesting level"
	noColorFlagDescription      = "disable colorized output"
	prefixFlagDescription       = "prefix printed before every rendered value"
	skipCacheFlagDescription    = "ignore the cache and rediscover the command tree"
	invalidIndentMessageFormat  = "invalid indent value %d: must not be negative"
	cacheMissWarningFormat      = "cache unavailable, rediscovering: %v"
	cachePersistErrorFormat     = "persist command cache: %w"
	clipboardCopyErrorFormat    = "copy listing to clipboard: %w"
	configurationLoadErrFormat  = "load configuration: %w"
	lineBreak                   = "\n"
	renderedLineTemplate        = "%s\n"
	deployTargetRequiredMessage = "specify a deploy target"
)

// listFlagValues carries the raw flag values of the list command.
type listFlagValues struct {
	includeHelp bool
	indentWidth int
	noColor     bool
	prefix      string
	skipCache   bool
	copyOutput  bool
}

// Execute runs the cmdscope application.
func Execute(logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	rootCommand := createRootCommand(logger)
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(logger *zap.Logger) *cobra.Command {
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.AddCommand(
		createListCommand(logger),
		createDeployCommand(logger),
		createConfigCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createListCommand returns the list subcommand.
func createListCommand(logger *zap.Logger) *cobra.Command {
	var flagValues listFlagValues
	flagValues.indentWidth = types.DefaultIndentWidth
	flagValues.prefix = types.DefaultLinePrefix

	listCommand := &cobra.Command{
		Use:     listUse,
		Aliases: []string{listAlias},
		Short:   listShortDescription,
		Long:    listLongDescription,
		Example: listUsageExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
			if configurationError != nil {
				return fmt.Errorf(configurationLoadErrFormat, configurationError)
			}
			listOptions := resolveListOptions(applicationConfiguration.List, command, flagValues)
			if listOptions.IndentWidth < 0 {
				return fmt.Errorf(invalidIndentMessageFormat, listOptions.IndentWidth)
			}
			return runListCommand(arguments[0], listOptions, logger)
		},
	}

	listCommand.Flags().BoolVar(&flagValues.includeHelp, includeHelpFlagName, false, includeHelpFlagDescription)
	listCommand.Flags().IntVar(&flagValues.indentWidth, indentFlagName, types.DefaultIndentWidth, indentFlagDescription)
	listCommand.Flags().BoolVar(&flagValues.noColor, noColorFlagName, false, noColorFlagDescription)
	listCommand.Flags().StringVar(&flagValues.prefix, prefixFlagName, types.DefaultLinePrefix, prefixFlagDescription)
	listCommand.Flags().BoolVar(&flagValues.skipCache, skipCacheFlagName, false, skipCacheFlagDescription)
	registerCopyFlag(listCommand.Flags(), &flagValues.copyOutput)
	return listCommand
}

// resolveListOptions layers defaults, configuration, and explicitly set flags.
func resolveListOptions(listConfiguration config.ListCommandConfiguration, command *cobra.Command, flagValues listFlagValues) types.ListOptions {
	listOptions := types.DefaultListOptions()
	if listConfiguration.IncludeHelp != nil {
		listOptions.IncludeHelp = *listConfiguration.IncludeHelp
	}
	if listConfiguration.Indent != nil {
		listOptions.IndentWidth = *listConfiguration.Indent
	}
	if listConfiguration.Color != nil {
		listOptions.UseColor = *listConfiguration.Color
	}
	if listConfiguration.Prefix != "" {
		listOptions.Prefix = listConfiguration.Prefix
	}
	if listConfiguration.SkipCache != nil {
		listOptions.SkipCache = *listConfiguration.SkipCache
	}
	if listConfiguration.Copy != nil {
		listOptions.CopyOutput = *listConfiguration.Copy
	}

	commandFlags := command.Flags()
	if commandFlags.Changed(includeHelpFlagName) {
		listOptions.IncludeHelp = flagValues.includeHelp
	}
	if commandFlags.Changed(indentFlagName) {
		listOptions.IndentWidth = flagValues.indentWidth
	}
	if commandFlags.Changed(noColorFlagName) {
		listOptions.UseColor = !flagValues.noColor
	}
	if commandFlags.Changed(prefixFlagName) {
		listOptions.Prefix = flagValues.prefix
	}
	if commandFlags.Changed(skipCacheFlagName) {
		listOptions.SkipCache = flagValues.skipCache
	}
	if commandFlags.Changed(copyFlagName) {
		listOptions.CopyOutput = flagValues.copyOutput
	}
	return listOptions
}

// runListCommand performs the cache check, discovery, rendering, and cache
// persistence sequence for one inspected binary.
func runListCommand(binaryName string, listOptions types.ListOptions, logger *zap.Logger) error {
	descriptorStore := descriptor.NewStore()

	cacheHit := false
	if !listOptions.SkipCache {
		cachedDescriptors, cacheError := cache.Load(binaryName)
		if cacheError != nil {
			logger.Warn(fmt.Sprintf(cacheMissWarningFormat, cacheError))
			listOptions.SkipCache = true
		} else if len(cachedDescriptors) > 0 {
			descriptorStore.Hydrate(cachedDescriptors)
			cacheHit = true
		}
	}

	if !cacheHit {
		descriptorStore.Reset()
		helpProvider := helptext.NewExecProvider(binaryName)
		commandDiscoverer := discover.NewDiscoverer(helpProvider, descriptorStore, listOptions.IncludeHelp, logger)
		if discoveryError := commandDiscoverer.DiscoverAll(); discoveryError != nil {
			return discoveryError
		}
	}

	if renderError := renderListing(descriptorStore.Descriptors(), listOptions); renderError != nil {
		return renderError
	}

	if persistError := cache.Save(binaryName, descriptorStore.Descriptors()); persistError != nil {
		return fmt.Errorf(cachePersistErrorFormat, persistError)
	}
	return nil
}

// renderListing streams rendered lines to stdout, capturing them for the
// clipboard when requested.
func renderListing(storedDescriptors []types.CommandDescriptor, listOptions types.ListOptions) error {
	group, streamContext := errgroup.WithContext(context.Background())
	renderedLines := make(chan string)
	var capturedListing strings.Builder

	group.Go(func() error {
		defer close(renderedLines)
		return output.StreamListing(streamContext, storedDescriptors, listOptions, renderedLines)
	})

	group.Go(func() error {
		for renderedLine := range renderedLines {
			fmt.Printf(renderedLineTemplate, renderedLine)
			if listOptions.CopyOutput {
				capturedListing.WriteString(renderedLine)
				capturedListing.WriteString(lineBreak)
			}
		}
		return nil
	})

	if waitError := group.Wait(); waitError != nil {
		return waitError
	}

	if listOptions.CopyOutput {
		clipboardService := clipboard.NewService()
		if copyError := clipboardService.Copy(capturedListing.String()); copyError != nil {
			return fmt.Errorf(clipboardCopyErrorFormat, copyError)
		}
	}
	return nil
}

// createDeployCommand returns the deploy command group.
func createDeployCommand(logger *zap.Logger) *cobra.Command {
	deployCommand := &cobra.Command{
		Use:   deployUse,
		Short: deployShortDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			if helpError := command.Help(); helpError != nil {
				return helpError
			}
			return fmt.Errorf(deployTargetRequiredMessage)
		},
	}

	awsS3Command := &cobra.Command{
		Use:   awsS3Use,
		Short: awsS3ShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
			if configurationError != nil {
				return fmt.Errorf(configurationLoadErrFormat, configurationError)
			}
			return deploy.AwsS3(applicationConfiguration.Deploy.AwsS3, logger)
		},
	}

	azureWebAppCommand := &cobra.Command{
		Use:   azureUse,
		Short: azureShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{})
			if configurationError != nil {
				return fmt.Errorf(configurationLoadErrFormat, configurationError)
			}
			return deploy.AzureWebApp(applicationConfiguration.Deploy.AzureWebApp, logger)
		},
	}

	deployCommand.AddCommand(awsS3Command, azureWebAppCommand)
	return deployCommand
}

// createConfigCommand returns the config command group.
func createConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configUse,
		Short: configShortDescription,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	var writeGlobal bool
	var forceOverwrite bool
	configInitCommand := &cobra.Command{
		Use:   configInitUse,
		Short: configInitShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			initTarget := config.InitTargetLocal
			if writeGlobal {
				initTarget = config.InitTargetGlobal
			}
			destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target: initTarget,
				Force:  forceOverwrite,
			})
			if initError != nil {
				return initError
			}
			fmt.Printf(configInitSuccessFormat, destinationPath)
			return nil
		},
	}
	configInitCommand.Flags().BoolVar(&writeGlobal, globalFlagName, false, globalFlagDescription)
	configInitCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)

	configCommand.AddCommand(configInitCommand)
	return configCommand
}
