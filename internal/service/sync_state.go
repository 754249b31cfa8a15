// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// SkipReason explains why a sync cycle was suppressed by the guard.
type SkipReason string

const (
	SkipNone        SkipReason = ""
	SkipInitialLoad SkipReason = "initial load"
	SkipInFlight    SkipReason = "sync in flight"
)

// SyncState guards the remote writes of a single collection.
//
// isInitialLoad starts true and stays true until MarkHydrated, so the
// snapshots emitted while local state is being hydrated are never echoed
// back to the remote. isSyncing is a mutual-exclusion flag, not a queue: a
// cycle that finds it set is dropped and the next debounced call carries the
// fresher snapshot.
type SyncState struct {
	mu            sync.Mutex
	isSyncing     bool
	isInitialLoad bool
}

// NewSyncState returns a guard in the initial-load phase.
func NewSyncState() *SyncState {
	return &SyncState{isInitialLoad: true}
}

// TryAcquire sets isSyncing if neither flag is set. Check and set happen
// under one lock, so two concurrent cycles can never both proceed.
func (s *SyncState) TryAcquire() (bool, SkipReason) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isInitialLoad {
		return false, SkipInitialLoad
	}
	if s.isSyncing {
		return false, SkipInFlight
	}

	s.isSyncing = true
	return true, SkipNone
}

// Release clears isSyncing.
func (s *SyncState) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isSyncing = false
}

// MarkHydrated ends the initial-load phase. It reports true only for the
// call that performed the transition.
func (s *SyncState) MarkHydrated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isInitialLoad {
		return false
	}
	s.isInitialLoad = false
	return true
}

func (s *SyncState) IsSyncing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isSyncing
}

func (s *SyncState) IsInitialLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isInitialLoad
}
