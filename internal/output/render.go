// Package output renders a descriptor store as an indented, optionally
// colorized listing, parents before children.
package output

import (
	"context"
	"fmt"
	"strings"

	"github.com/temirov/cmdscope/internal/types"
)

const indentCharacter = " "

// StreamListing walks the descriptors and sends one rendered line at a time to
// outputLines. Roots are the descriptors without a parent; when none exist the
// whole store is treated as roots so a flat command list still prints. Options
// render one level below their command, children two levels below, which nests
// grandchildren beneath their parent's options block instead of beside it.
func StreamListing(ctx context.Context, storedDescriptors []types.CommandDescriptor, listOptions types.ListOptions, outputLines chan<- string) error {
	rootDescriptors := filterRoots(storedDescriptors)
	for _, rootDescriptor := range rootDescriptors {
		if emitError := emitDescriptor(ctx, storedDescriptors, rootDescriptor, 0, listOptions, outputLines); emitError != nil {
			return emitError
		}
	}
	return nil
}

// RenderListing collects the streamed listing into a single string. Used where
// the full rendering is needed at once, such as clipboard copies and tests.
func RenderListing(storedDescriptors []types.CommandDescriptor, listOptions types.ListOptions) string {
	renderedLines := make(chan string)
	var listingBuilder strings.Builder
	collectionDone := make(chan struct{})
	go func() {
		defer close(collectionDone)
		for renderedLine := range renderedLines {
			listingBuilder.WriteString(renderedLine)
			listingBuilder.WriteString("\n")
		}
	}()
	_ = StreamListing(context.Background(), storedDescriptors, listOptions, renderedLines)
	close(renderedLines)
	<-collectionDone
	return listingBuilder.String()
}

func emitDescriptor(ctx context.Context, storedDescriptors []types.CommandDescriptor, currentDescriptor types.CommandDescriptor, indentLevel int, listOptions types.ListOptions, outputLines chan<- string) error {
	commandValue := currentDescriptor.Command
	if listOptions.UseColor {
		commandValue = commandStyle.Render(commandValue)
	}
	if sendError := sendLine(ctx, outputLines, formatLine(indentLevel, listOptions.Prefix, commandValue)); sendError != nil {
		return sendError
	}

	optionIndentLevel := indentLevel + listOptions.IndentWidth
	for _, optionValue := range currentDescriptor.Options {
		renderedOption := optionValue
		if listOptions.UseColor {
			renderedOption = optionStyle.Render(renderedOption)
		}
		if sendError := sendLine(ctx, outputLines, formatLine(optionIndentLevel, listOptions.Prefix, renderedOption)); sendError != nil {
			return sendError
		}
	}

	childIndentLevel := indentLevel + listOptions.IndentWidth*2
	for _, childDescriptor := range childrenOf(storedDescriptors, currentDescriptor.Command) {
		if emitError := emitDescriptor(ctx, storedDescriptors, childDescriptor, childIndentLevel, listOptions, outputLines); emitError != nil {
			return emitError
		}
	}
	return nil
}

func sendLine(ctx context.Context, outputLines chan<- string, renderedLine string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case outputLines <- renderedLine:
		return nil
	}
}

func formatLine(indentLevel int, linePrefix string, renderedValue string) string {
	return fmt.Sprintf("%s%s%s", strings.Repeat(indentCharacter, indentLevel), linePrefix, renderedValue)
}

// filterRoots returns the descriptors without a parent in store order, or every
// descriptor when no true roots exist.
func filterRoots(storedDescriptors []types.CommandDescriptor) []types.CommandDescriptor {
	var rootDescriptors []types.CommandDescriptor
	for _, storedDescriptor := range storedDescriptors {
		if !storedDescriptor.HasParent() {
			rootDescriptors = append(rootDescriptors, storedDescriptor)
		}
	}
	if len(rootDescriptors) == 0 {
		return storedDescriptors
	}
	return rootDescriptors
}

// childrenOf returns the descriptors whose parent equals the command name, in store order.
func childrenOf(storedDescriptors []types.CommandDescriptor, commandName string) []types.CommandDescriptor {
	var childDescriptors []types.CommandDescriptor
	for _, storedDescriptor := range storedDescriptors {
		if storedDescriptor.HasParent() && *storedDescriptor.Parent == commandName {
			childDescriptors = append(childDescriptors, storedDescriptor)
		}
	}
	return childDescriptors
}
