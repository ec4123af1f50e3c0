// Package descriptor builds command descriptors from discovered command paths and
// maintains the ordered insert-or-merge store they live in.
package descriptor

import (
	"strings"

	"github.com/temirov/cmdscope/internal/types"
)

const commandPathSeparator = " "

// Build converts a fully-qualified, space-separated command path and its parsed
// options into a descriptor with explicit parent linkage. The last path token is
// the command; the second-to-last, when present, is its immediate parent. A
// single-token path produces a root descriptor with no parent.
func Build(fullCommandPath string, commandOptions []string) types.CommandDescriptor {
	pathTokens := strings.Split(fullCommandPath, commandPathSeparator)
	builtDescriptor := types.CommandDescriptor{
		Command: pathTokens[len(pathTokens)-1],
		Options: commandOptions,
	}
	if len(pathTokens) > 1 {
		parentName := pathTokens[len(pathTokens)-2]
		builtDescriptor.Parent = &parentName
	}
	return builtDescriptor
}
