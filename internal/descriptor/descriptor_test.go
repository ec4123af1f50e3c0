package descriptor

import (
	"reflect"
	"testing"

	"github.com/temirov/cmdscope/internal/types"
)

func stringPointer(value string) *string {
	pointer := value
	return &pointer
}

func TestBuild(t *testing.T) {
	testCases := []struct {
		name               string
		fullCommandPath    string
		commandOptions     []string
		expectedDescriptor types.CommandDescriptor
	}{
		{
			name:            "nested_path_resolves_parent",
			fullCommandPath: "deploy azure-web-app",
			commandOptions:  []string{"--force"},
			expectedDescriptor: types.CommandDescriptor{
				Command: "azure-web-app",
				Options: []string{"--force"},
				Parent:  stringPointer("deploy"),
			},
		},
		{
			name:            "single_token_is_root",
			fullCommandPath: "list",
			commandOptions:  []string{},
			expectedDescriptor: types.CommandDescriptor{
				Command: "list",
				Options: []string{},
				Parent:  nil,
			},
		},
		{
			name:            "deep_path_uses_immediate_parent",
			fullCommandPath: "cluster node drain",
			commandOptions:  []string{"--grace-period <seconds>"},
			expectedDescriptor: types.CommandDescriptor{
				Command: "drain",
				Options: []string{"--grace-period <seconds>"},
				Parent:  stringPointer("node"),
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			builtDescriptor := Build(testCase.fullCommandPath, testCase.commandOptions)
			if !reflect.DeepEqual(builtDescriptor, testCase.expectedDescriptor) {
				t.Fatalf("expected descriptor %+v, got %+v", testCase.expectedDescriptor, builtDescriptor)
			}
		})
	}
}

func TestStoreUpsertMergesFields(t *testing.T) {
	descriptorStore := NewStore()
	descriptorStore.Upsert(types.CommandDescriptor{Command: "x", Options: []string{"a"}, Parent: nil})
	descriptorStore.Upsert(types.CommandDescriptor{Command: "x", Options: []string{"b"}, Parent: stringPointer("root")})

	if descriptorStore.Len() != 1 {
		t.Fatalf("expected one descriptor after merge, got %d", descriptorStore.Len())
	}
	mergedDescriptor, found := descriptorStore.Lookup("x")
	if !found {
		t.Fatal("expected descriptor for command x")
	}
	if !reflect.DeepEqual(mergedDescriptor.Options, []string{"b"}) {
		t.Fatalf("expected later options to win, got %v", mergedDescriptor.Options)
	}
	if mergedDescriptor.Parent == nil || *mergedDescriptor.Parent != "root" {
		t.Fatalf("expected parent root, got %v", mergedDescriptor.Parent)
	}
}

func TestStoreUpsertPreservesAbsentFields(t *testing.T) {
	descriptorStore := NewStore()
	descriptorStore.Upsert(types.CommandDescriptor{Command: "x", Options: []string{"a"}, Parent: stringPointer("root")})
	descriptorStore.Upsert(types.CommandDescriptor{Command: "x"})

	mergedDescriptor, found := descriptorStore.Lookup("x")
	if !found {
		t.Fatal("expected descriptor for command x")
	}
	if !reflect.DeepEqual(mergedDescriptor.Options, []string{"a"}) {
		t.Fatalf("expected prior options preserved, got %v", mergedDescriptor.Options)
	}
	if mergedDescriptor.Parent == nil || *mergedDescriptor.Parent != "root" {
		t.Fatalf("expected prior parent preserved, got %v", mergedDescriptor.Parent)
	}
}

func TestStoreUpsertIsIdempotent(t *testing.T) {
	sameDescriptor := types.CommandDescriptor{Command: "deploy", Options: []string{"--force"}, Parent: nil}

	onceStore := NewStore()
	onceStore.Upsert(sameDescriptor)

	twiceStore := NewStore()
	twiceStore.Upsert(sameDescriptor)
	twiceStore.Upsert(sameDescriptor)

	if !reflect.DeepEqual(onceStore.Descriptors(), twiceStore.Descriptors()) {
		t.Fatalf("expected identical stores, got %v and %v", onceStore.Descriptors(), twiceStore.Descriptors())
	}
}

func TestStoreOrderAndReset(t *testing.T) {
	descriptorStore := NewStore()
	descriptorStore.Upsert(types.CommandDescriptor{Command: "first", Options: []string{}})
	descriptorStore.Upsert(types.CommandDescriptor{Command: "second", Options: []string{}})
	descriptorStore.Upsert(types.CommandDescriptor{Command: "first", Options: []string{"--changed"}})

	orderedDescriptors := descriptorStore.Descriptors()
	if len(orderedDescriptors) != 2 {
		t.Fatalf("expected two descriptors, got %d", len(orderedDescriptors))
	}
	if orderedDescriptors[0].Command != "second" || orderedDescriptors[1].Command != "first" {
		t.Fatalf("expected re-upserted descriptor to move to the end, got order %v", orderedDescriptors)
	}

	descriptorStore.Reset()
	if descriptorStore.Len() != 0 {
		t.Fatalf("expected empty store after reset, got %d descriptors", descriptorStore.Len())
	}
}

func TestStoreHydrate(t *testing.T) {
	descriptorStore := NewStore()
	descriptorStore.Upsert(types.CommandDescriptor{Command: "stale", Options: []string{}})

	cachedDescriptors := []types.CommandDescriptor{
		{Command: "deploy", Options: []string{"--force"}, Parent: nil},
		{Command: "aws-s3", Options: []string{}, Parent: stringPointer("deploy")},
	}
	descriptorStore.Hydrate(cachedDescriptors)

	if !reflect.DeepEqual(descriptorStore.Descriptors(), cachedDescriptors) {
		t.Fatalf("expected hydrated store to equal cached descriptors, got %v", descriptorStore.Descriptors())
	}
}
