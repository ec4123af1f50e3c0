package output

import (
	"strings"
	"testing"

	"github.com/temirov/cmdscope/internal/types"
)

func stringPointer(value string) *string {
	pointer := value
	return &pointer
}

func plainListOptions() types.ListOptions {
	listOptions := types.DefaultListOptions()
	listOptions.UseColor = false
	listOptions.Prefix = "☑ "
	listOptions.IndentWidth = 2
	return listOptions
}

func TestRenderListingTwoLevelTree(t *testing.T) {
	storedDescriptors := []types.CommandDescriptor{
		{Command: "aws-s3", Options: []string{"--bucket <name>"}, Parent: stringPointer("deploy")},
		{Command: "azure-web-app", Options: []string{}, Parent: stringPointer("deploy")},
		{Command: "deploy", Options: []string{"--force"}, Parent: nil},
	}

	renderedListing := RenderListing(storedDescriptors, plainListOptions())
	expectedListing := strings.Join([]string{
		"☑ deploy",
		"  ☑ --force",
		"    ☑ aws-s3",
		"      ☑ --bucket <name>",
		"    ☑ azure-web-app",
		"",
	}, "\n")
	if renderedListing != expectedListing {
		t.Fatalf("expected listing:\n%q\ngot:\n%q", expectedListing, renderedListing)
	}
}

func TestRenderListingFallbackRooting(t *testing.T) {
	// No descriptor has a nil parent, so every descriptor prints as a root
	// instead of the listing coming out empty.
	storedDescriptors := []types.CommandDescriptor{
		{Command: "alpha", Options: []string{}, Parent: stringPointer("ghost")},
		{Command: "beta", Options: []string{}, Parent: stringPointer("ghost")},
	}

	renderedListing := RenderListing(storedDescriptors, plainListOptions())
	for _, commandName := range []string{"alpha", "beta"} {
		if !strings.Contains(renderedListing, "☑ "+commandName) {
			t.Fatalf("expected %s in fallback listing, got:\n%s", commandName, renderedListing)
		}
	}
}

func TestRenderListingRootOrderIsStoreOrder(t *testing.T) {
	storedDescriptors := []types.CommandDescriptor{
		{Command: "second", Options: []string{}, Parent: nil},
		{Command: "first", Options: []string{}, Parent: nil},
	}

	renderedListing := RenderListing(storedDescriptors, plainListOptions())
	secondIndex := strings.Index(renderedListing, "second")
	firstIndex := strings.Index(renderedListing, "first")
	if secondIndex < 0 || firstIndex < 0 || secondIndex > firstIndex {
		t.Fatalf("expected roots in store order, got:\n%s", renderedListing)
	}
}

func TestRenderListingCustomPrefixAndIndent(t *testing.T) {
	listOptions := plainListOptions()
	listOptions.Prefix = "- "
	listOptions.IndentWidth = 4

	storedDescriptors := []types.CommandDescriptor{
		{Command: "list", Options: []string{"--skip-cache"}, Parent: nil},
	}

	renderedListing := RenderListing(storedDescriptors, listOptions)
	expectedListing := "- list\n    - --skip-cache\n"
	if renderedListing != expectedListing {
		t.Fatalf("expected listing %q, got %q", expectedListing, renderedListing)
	}
}

func TestRenderListingColorizedCommandsDifferFromOptions(t *testing.T) {
	listOptions := plainListOptions()
	listOptions.UseColor = true

	commandLine := commandStyle.Render("deploy")
	optionLine := optionStyle.Render("deploy")
	if commandLine == optionLine {
		t.Skip("color profile renders no distinct styles in this environment")
	}

	storedDescriptors := []types.CommandDescriptor{
		{Command: "deploy", Options: []string{"--force"}, Parent: nil},
	}
	renderedListing := RenderListing(storedDescriptors, listOptions)
	if !strings.Contains(renderedListing, commandStyle.Render("deploy")) {
		t.Fatalf("expected command styled distinctly, got %q", renderedListing)
	}
}

func TestRenderListingEmptyStore(t *testing.T) {
	renderedListing := RenderListing(nil, plainListOptions())
	if renderedListing != "" {
		t.Fatalf("expected empty listing for empty store, got %q", renderedListing)
	}
}
