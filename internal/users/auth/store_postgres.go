// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/aluno-api/internal/platform/database/schema"
	"github.com/taibuivan/aluno-api/internal/platform/dberr"
)

// # Identity Repository

// PostgresCredentialStore implements [CredentialStore] on the identity table.
//
// Uniqueness is owned by the identity_email_key constraint and ids by the
// BIGSERIAL sequence, so concurrent registrations are resolved by Postgres.
type PostgresCredentialStore struct {
	pool *pgxpool.Pool
}

// NewPostgresCredentialStore creates a new PostgreSQL credential store.
func NewPostgresCredentialStore(pool *pgxpool.Pool) *PostgresCredentialStore {
	return &PostgresCredentialStore{pool: pool}
}

/*
FindByEmail retrieves an identity by its unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Identity: Hydrated entity
  - error: ErrIdentityNotFound or database errors
*/
func (repository *PostgresCredentialStore) FindByEmail(context context.Context, email string) (*Identity, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.IdentityTable.Columns(), ", "),
		schema.IdentityTable.Table,
		schema.IdentityTable.Email,
	)

	identity := &Identity{}
	err := repository.pool.QueryRow(context, query, email).Scan(
		&identity.ID,
		&identity.DisplayName,
		&identity.Email,
		&identity.PasswordHash,
	)

	if err = dberr.Wrap(err, "postgres_identity_find_by_email_failed"); err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}

	return identity, nil
}

/*
Create inserts a new identity and returns it with the generated id.

Parameters:
  - context: context.Context
  - displayName: string
  - email: string
  - passwordHash: string

Returns:
  - *Identity: Persisted entity
  - error: ErrDuplicateEmail on SQLSTATE 23505, or database errors
*/
func (repository *PostgresCredentialStore) Create(context context.Context, displayName, email, passwordHash string) (*Identity, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		schema.IdentityTable.Table,
		schema.IdentityTable.DisplayName,
		schema.IdentityTable.Email,
		schema.IdentityTable.PasswordHash,
		schema.IdentityTable.ID,
	)

	identity := &Identity{
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: passwordHash,
	}

	err := repository.pool.QueryRow(context, query, displayName, email, passwordHash).Scan(&identity.ID)
	if err = dberr.Wrap(err, "postgres_identity_create_failed"); err != nil {
		if errors.Is(err, dberr.ErrUniqueViolation) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return identity, nil
}
