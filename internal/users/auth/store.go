// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
)

// # Credential Data Access

// CredentialStore defines the data access contract for registered identities.
//
// Implementations must be safe for concurrent use and must enforce email
// uniqueness atomically: two concurrent Create calls with the same email yield
// exactly one identity and one [ErrDuplicateEmail].
type CredentialStore interface {

	/*
		FindByEmail returns the identity with the given email (exact, case-sensitive).

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Identity: Hydrated entity
		  - error: ErrIdentityNotFound or storage failures
	*/
	FindByEmail(context context.Context, email string) (*Identity, error)

	/*
		Create persists a new identity and assigns its id.

		Parameters:
		  - context: context.Context
		  - displayName: string
		  - email: string
		  - passwordHash: string

		Returns:
		  - *Identity: Persisted entity with its id
		  - error: ErrDuplicateEmail or storage failures
	*/
	Create(context context.Context, displayName, email, passwordHash string) (*Identity, error)
}
