// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the tab sync client runtime.
//
// It wires local storage, the local state store, the collection syncs, the
// background resync worker and the local API into a single process
// lifecycle, and flushes pending syncs on shutdown.
package client
