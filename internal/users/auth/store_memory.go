// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"
)

// MemoryCredentialStore keeps identities in a map keyed by email.
// The data lives for the process lifetime only.
type MemoryCredentialStore struct {
	mu         sync.RWMutex
	identities map[string]Identity
	lastID     int64
}

// NewMemoryCredentialStore creates an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{identities: make(map[string]Identity)}
}

// FindByEmail implements [CredentialStore].
func (store *MemoryCredentialStore) FindByEmail(_ context.Context, email string) (*Identity, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	identity, ok := store.identities[email]
	if !ok {
		return nil, ErrIdentityNotFound
	}
	return &identity, nil
}

// Create implements [CredentialStore]. The duplicate check and the insert
// happen under one lock, and ids come from a counter rather than the map size.
func (store *MemoryCredentialStore) Create(_ context.Context, displayName, email, passwordHash string) (*Identity, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.identities[email]; exists {
		return nil, ErrDuplicateEmail
	}

	store.lastID++
	identity := Identity{
		ID:           store.lastID,
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: passwordHash,
	}
	store.identities[email] = identity

	return &identity, nil
}

// Len returns the number of registered identities.
func (store *MemoryCredentialStore) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.identities)
}
