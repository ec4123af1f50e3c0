// Package discover walks the command tree of an inspected binary by repeatedly
// invoking its help output, depth-first and synchronously, populating a
// descriptor store one node at a time.
package discover

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/cmdscope/internal/descriptor"
	"github.com/temirov/cmdscope/internal/helptext"
	"github.com/temirov/cmdscope/internal/types"
)

const (
	commandPathSeparator        = " "
	rootCommandPath             = ""
	providerFailureFormat       = "help invocation for %q failed: exit code %d, stderr: %s"
	providerInvocationFormat    = "help invocation for %q could not run: %w"
	revisitedPathWarningFormat  = "skipping already visited command path %q reported by %q"
	depthExceededWarningFormat  = "not descending into %q: command depth exceeds %d"
	rootCommandDisplayName      = "<root>"
	discoveredChildDebugMessage = "discovered subcommand"

	// maximumCommandDepth bounds recursion against a pathological help-text
	// provider reporting self-referential children. Real CLIs stay far below it.
	maximumCommandDepth = 16
)

// Discoverer orchestrates recursive help invocations against a single binary.
type Discoverer struct {
	helpProvider    helptext.Provider
	descriptorStore *descriptor.Store
	includeHelp     bool
	logger          *zap.Logger
	visitedPaths    map[string]struct{}
}

// NewDiscoverer constructs a Discoverer writing into the provided store.
func NewDiscoverer(helpProvider helptext.Provider, descriptorStore *descriptor.Store, includeHelp bool, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{
		helpProvider:    helpProvider,
		descriptorStore: descriptorStore,
		includeHelp:     includeHelp,
		logger:          logger,
		visitedPaths:    map[string]struct{}{},
	}
}

// DiscoverAll walks the whole command tree starting at the root command.
func (discoverer *Discoverer) DiscoverAll() error {
	return discoverer.discover(rootCommandPath, 0)
}

// discover inspects one command path: it recurses into every subcommand listed
// in the Commands: section before recording the current node's own descriptor.
// The root command itself is never recorded; only its children are.
func (discoverer *Discoverer) discover(commandPath string, commandDepth int) error {
	discoverer.visitedPaths[commandPath] = struct{}{}

	helpResult, invocationError := discoverer.helpProvider.Help(commandPath)
	if invocationError != nil {
		return fmt.Errorf(providerInvocationFormat, displayName(commandPath), invocationError)
	}
	if !helpResult.Succeeded() {
		return fmt.Errorf(providerFailureFormat, displayName(commandPath), helpResult.ExitCode, strings.TrimSpace(helpResult.Stderr))
	}

	childCommandNames := helptext.ExtractRange(helpResult.Stdout, types.CommandsSectionMarker, types.CommandsEndSentinel, discoverer.includeHelp)
	for _, childCommandName := range childCommandNames {
		childCommandPath := childCommandName
		if commandPath != rootCommandPath {
			childCommandPath = commandPath + commandPathSeparator + childCommandName
		}
		if _, alreadyVisited := discoverer.visitedPaths[childCommandPath]; alreadyVisited {
			discoverer.logger.Warn(fmt.Sprintf(revisitedPathWarningFormat, childCommandPath, displayName(commandPath)))
			continue
		}
		if commandDepth+1 > maximumCommandDepth {
			discoverer.logger.Warn(fmt.Sprintf(depthExceededWarningFormat, childCommandPath, maximumCommandDepth))
			continue
		}
		discoverer.logger.Debug(discoveredChildDebugMessage, zap.String("path", childCommandPath))
		if childError := discoverer.discover(childCommandPath, commandDepth+1); childError != nil {
			return childError
		}
	}

	if commandPath == rootCommandPath {
		return nil
	}

	commandOptions := helptext.ExtractRange(helpResult.Stdout, types.OptionsSectionMarker, types.OptionsEndSentinel, discoverer.includeHelp)
	if commandOptions == nil {
		commandOptions = []string{}
	}
	discoverer.descriptorStore.Upsert(descriptor.Build(commandPath, commandOptions))
	return nil
}

func displayName(commandPath string) string {
	if commandPath == rootCommandPath {
		return rootCommandDisplayName
	}
	return commandPath
}
