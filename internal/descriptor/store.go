package descriptor

import (
	"github.com/temirov/cmdscope/internal/types"
)

// Store is an ordered mapping from command name to descriptor with
// insert-or-merge semantics. Command names are unique within the store at any
// time; descriptors are keyed by leaf name only, so commands with identical leaf
// names under different parents merge into a single entry whose parent reflects
// the most recent discovery. Re-upserting a command moves it to the end of the
// store order.
type Store struct {
	orderedDescriptors []types.CommandDescriptor
}

// NewStore constructs an empty descriptor store.
func NewStore() *Store {
	return &Store{}
}

// Upsert inserts the descriptor or merges it into an existing entry with the
// same command name. Fields present on the update win; fields absent on the
// update preserve the prior values, which makes repeated discovery of the same
// command path idempotent.
func (store *Store) Upsert(updatedDescriptor types.CommandDescriptor) {
	mergedDescriptor := updatedDescriptor
	existingIndex := store.indexOfCommand(updatedDescriptor.Command)
	if existingIndex >= 0 {
		existingDescriptor := store.orderedDescriptors[existingIndex]
		if mergedDescriptor.Options == nil {
			mergedDescriptor.Options = existingDescriptor.Options
		}
		if mergedDescriptor.Parent == nil {
			mergedDescriptor.Parent = existingDescriptor.Parent
		}
		store.orderedDescriptors = append(store.orderedDescriptors[:existingIndex], store.orderedDescriptors[existingIndex+1:]...)
	}
	store.orderedDescriptors = append(store.orderedDescriptors, mergedDescriptor)
}

// Lookup returns the descriptor for the command name and whether it exists.
func (store *Store) Lookup(commandName string) (types.CommandDescriptor, bool) {
	existingIndex := store.indexOfCommand(commandName)
	if existingIndex < 0 {
		return types.CommandDescriptor{}, false
	}
	return store.orderedDescriptors[existingIndex], true
}

// Descriptors returns the stored descriptors in store order.
func (store *Store) Descriptors() []types.CommandDescriptor {
	descriptorsCopy := make([]types.CommandDescriptor, len(store.orderedDescriptors))
	copy(descriptorsCopy, store.orderedDescriptors)
	return descriptorsCopy
}

// Len returns the number of stored descriptors.
func (store *Store) Len() int {
	return len(store.orderedDescriptors)
}

// Reset removes every descriptor from the store.
func (store *Store) Reset() {
	store.orderedDescriptors = nil
}

// Hydrate replaces the store contents with descriptors loaded from the cache,
// applying the same merge semantics entry by entry.
func (store *Store) Hydrate(cachedDescriptors []types.CommandDescriptor) {
	store.Reset()
	for _, cachedDescriptor := range cachedDescriptors {
		store.Upsert(cachedDescriptor)
	}
}

func (store *Store) indexOfCommand(commandName string) int {
	for descriptorIndex, storedDescriptor := range store.orderedDescriptors {
		if storedDescriptor.Command == commandName {
			return descriptorIndex
		}
	}
	return -1
}
