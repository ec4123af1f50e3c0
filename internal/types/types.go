// Package types defines every cross-package data structure used by the cmdscope CLI.
package types

const (
	// CommandsSectionMarker is the line that opens the subcommand section of help output.
	CommandsSectionMarker = "Commands:"
	// OptionsSectionMarker is the line that opens the option section of help output.
	OptionsSectionMarker = "Options:"
	// CommandsEndSentinel is the token of the generic help entry that closes the subcommand section.
	CommandsEndSentinel = "help [command]"
	// OptionsEndSentinel is the token of the generic help entry that closes the option section.
	OptionsEndSentinel = "-h, --help"

	// DefaultIndentWidth is the number of spaces per nesting level in the rendered listing.
	DefaultIndentWidth = 4
	// DefaultLinePrefix is the checkbox marker printed before every rendered value.
	DefaultLinePrefix = "☑ "
)

// CommandDescriptor is the unit of knowledge about one discovered command node.
// The command name is the leaf name only, never the full space-separated path.
type CommandDescriptor struct {
	Command string   `json:"command"`
	Options []string `json:"options"`
	Parent  *string  `json:"parent"`
}

// HasParent reports whether the descriptor names an immediate parent command.
func (descriptor CommandDescriptor) HasParent() bool {
	return descriptor.Parent != nil
}

// ListOptions configures discovery and rendering of the command listing.
type ListOptions struct {
	IncludeHelp bool
	IndentWidth int
	UseColor    bool
	Prefix      string
	SkipCache   bool
	CopyOutput  bool
}

// DefaultListOptions returns the option values used when neither configuration nor flags override them.
func DefaultListOptions() ListOptions {
	return ListOptions{
		IncludeHelp: false,
		IndentWidth: DefaultIndentWidth,
		UseColor:    true,
		Prefix:      DefaultLinePrefix,
		SkipCache:   false,
	}
}
