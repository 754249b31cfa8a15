package service

// collectionSyncer is the type-erased view of a CollectionSync used by
// SyncServices for lifecycle calls.
type collectionSyncer interface {
	State() *SyncState
	Flush()
	Stop()
	Wait()
}
