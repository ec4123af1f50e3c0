// Package cache persists discovered command descriptors as a JSON array under
// the user's cmdscope configuration directory, one cache file per inspected
// binary. The cache is a state cache: it never expires on its own and is only
// refreshed by an explicit skip or by a failed read.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/cmdscope/internal/types"
	"github.com/temirov/cmdscope/internal/utils"
)

const (
	cacheFileNameFormat       = "commands.%s.json"
	cacheFileIndent           = "    "
	cacheFilePermissions      = 0o644
	cacheDirectoryPermissions = 0o755
	homeDirectoryErrorFormat  = "determine home directory: %w"
	cacheReadErrorFormat      = "read cache file %s: %w"
	cacheParseErrorFormat     = "parse cache file %s: %w"
	cacheEncodeErrorFormat    = "encode descriptors for %s: %w"
	cacheDirectoryErrorFormat = "create cache directory %s: %w"
	cacheWriteErrorFormat     = "write cache file %s: %w"
)

// FilePath returns the cache file location for the named binary:
// <home>/.cmdscope/commands.<binary>.json.
func FilePath(binaryName string) (string, error) {
	homeDirectory, homeDirectoryError := os.UserHomeDir()
	if homeDirectoryError != nil {
		return utils.EmptyString, fmt.Errorf(homeDirectoryErrorFormat, homeDirectoryError)
	}
	cacheFileName := fmt.Sprintf(cacheFileNameFormat, filepath.Base(binaryName))
	return filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, cacheFileName), nil
}

// Load reads and parses the cache file for the named binary. A missing,
// unreadable, or malformed file is an error the caller treats as a cache miss.
func Load(binaryName string) ([]types.CommandDescriptor, error) {
	cacheFilePath, pathError := FilePath(binaryName)
	if pathError != nil {
		return nil, pathError
	}
	cacheFileContents, readError := os.ReadFile(cacheFilePath) // #nosec G304
	if readError != nil {
		return nil, fmt.Errorf(cacheReadErrorFormat, cacheFilePath, readError)
	}
	var cachedDescriptors []types.CommandDescriptor
	if unmarshalError := json.Unmarshal(cacheFileContents, &cachedDescriptors); unmarshalError != nil {
		return nil, fmt.Errorf(cacheParseErrorFormat, cacheFilePath, unmarshalError)
	}
	return cachedDescriptors, nil
}

// Save overwrites the cache file for the named binary with the full descriptor
// set, pretty-printed with four-space indentation. The cache directory is
// created when absent.
func Save(binaryName string, storedDescriptors []types.CommandDescriptor) error {
	cacheFilePath, pathError := FilePath(binaryName)
	if pathError != nil {
		return pathError
	}
	encodedDescriptors, marshalError := json.MarshalIndent(storedDescriptors, utils.EmptyString, cacheFileIndent)
	if marshalError != nil {
		return fmt.Errorf(cacheEncodeErrorFormat, cacheFilePath, marshalError)
	}
	cacheDirectory := filepath.Dir(cacheFilePath)
	if directoryError := os.MkdirAll(cacheDirectory, cacheDirectoryPermissions); directoryError != nil {
		return fmt.Errorf(cacheDirectoryErrorFormat, cacheDirectory, directoryError)
	}
	if writeError := os.WriteFile(cacheFilePath, encodedDescriptors, cacheFilePermissions); writeError != nil {
		return fmt.Errorf(cacheWriteErrorFormat, cacheFilePath, writeError)
	}
	return nil
}
