package cache

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/temirov/cmdscope/internal/types"
	"github.com/temirov/cmdscope/internal/utils"
)

func stringPointer(value string) *string {
	pointer := value
	return &pointer
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	storedDescriptors := []types.CommandDescriptor{
		{Command: "deploy", Options: []string{"--force"}, Parent: nil},
		{Command: "aws-s3", Options: []string{"--bucket <name>"}, Parent: stringPointer("deploy")},
		{Command: "azure-web-app", Options: []string{}, Parent: stringPointer("deploy")},
	}

	if saveError := Save("mytool", storedDescriptors); saveError != nil {
		t.Fatalf("unexpected save error: %v", saveError)
	}
	loadedDescriptors, loadError := Load("mytool")
	if loadError != nil {
		t.Fatalf("unexpected load error: %v", loadError)
	}
	if !reflect.DeepEqual(loadedDescriptors, storedDescriptors) {
		t.Fatalf("expected round-tripped descriptors %v, got %v", storedDescriptors, loadedDescriptors)
	}
}

func TestSaveCreatesCacheDirectoryAndPrettyPrints(t *testing.T) {
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)

	if saveError := Save("mytool", []types.CommandDescriptor{{Command: "list", Options: []string{}}}); saveError != nil {
		t.Fatalf("unexpected save error: %v", saveError)
	}

	cacheFilePath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, "commands.mytool.json")
	cacheFileContents, readError := os.ReadFile(cacheFilePath)
	if readError != nil {
		t.Fatalf("expected cache file at %s: %v", cacheFilePath, readError)
	}
	if !strings.Contains(string(cacheFileContents), "\n        \"command\": \"list\"") {
		t.Fatalf("expected four-space indented JSON, got:\n%s", cacheFileContents)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, loadError := Load("mytool"); loadError == nil {
		t.Fatal("expected an error for a missing cache file")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)

	cacheDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
	if directoryError := os.MkdirAll(cacheDirectory, 0o755); directoryError != nil {
		t.Fatalf("create cache directory: %v", directoryError)
	}
	cacheFilePath := filepath.Join(cacheDirectory, "commands.mytool.json")
	if writeError := os.WriteFile(cacheFilePath, []byte("{not json"), 0o644); writeError != nil {
		t.Fatalf("write malformed cache: %v", writeError)
	}

	if _, loadError := Load("mytool"); loadError == nil {
		t.Fatal("expected an error for a malformed cache file")
	}
}

func TestFilePathUsesBinaryBaseName(t *testing.T) {
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)

	cacheFilePath, pathError := FilePath("/usr/local/bin/mytool")
	if pathError != nil {
		t.Fatalf("unexpected path error: %v", pathError)
	}
	expectedPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, "commands.mytool.json")
	if cacheFilePath != expectedPath {
		t.Fatalf("expected cache path %s, got %s", expectedPath, cacheFilePath)
	}
}
