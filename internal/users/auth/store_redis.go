// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis key layout.
const (
	redisIdentitySequenceKey = "auth:identity:seq"
	redisIdentityEmailPrefix = "auth:identity:email:"
)

// RedisCredentialStore implements [CredentialStore] with one key per email.
//
// Ids come from INCR on a sequence key; the insert is a SETNX so only one of
// several concurrent registrations for an email can win. A losing insert burns
// its id, which keeps ids unique and increasing but not gap-free.
type RedisCredentialStore struct {
	client *redis.Client
}

// NewRedisCredentialStore creates a new Redis-backed credential store.
func NewRedisCredentialStore(client *redis.Client) *RedisCredentialStore {
	return &RedisCredentialStore{client: client}
}

/*
FindByEmail retrieves the identity stored under the email key.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Identity: Decoded entity
  - error: ErrIdentityNotFound or connectivity errors
*/
func (repository *RedisCredentialStore) FindByEmail(context context.Context, email string) (*Identity, error) {
	payload, err := repository.client.Get(context, redisIdentityEmailPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("redis_identity_get_failed: %w", err)
	}

	var record redisIdentity
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("redis_identity_decode_failed: %w", err)
	}

	return record.toIdentity(), nil
}

/*
Create allocates an id and stores the identity if the email is free.

Parameters:
  - context: context.Context
  - displayName: string
  - email: string
  - passwordHash: string

Returns:
  - *Identity: Persisted entity
  - error: ErrDuplicateEmail or connectivity errors
*/
func (repository *RedisCredentialStore) Create(context context.Context, displayName, email, passwordHash string) (*Identity, error) {
	identityID, err := repository.client.Incr(context, redisIdentitySequenceKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_identity_sequence_failed: %w", err)
	}

	identity := &Identity{
		ID:           identityID,
		DisplayName:  displayName,
		Email:        email,
		PasswordHash: passwordHash,
	}

	payload, err := json.Marshal(newRedisIdentity(identity))
	if err != nil {
		return nil, fmt.Errorf("redis_identity_encode_failed: %w", err)
	}

	stored, err := repository.client.SetNX(context, redisIdentityEmailPrefix+email, payload, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("redis_identity_set_failed: %w", err)
	}
	if !stored {
		return nil, ErrDuplicateEmail
	}

	return identity, nil
}

// redisIdentity is the stored form. Identity hides its hash from JSON, so the
// record needs its own tags.
type redisIdentity struct {
	ID           int64  `json:"id"`
	DisplayName  string `json:"display_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

func newRedisIdentity(identity *Identity) redisIdentity {
	return redisIdentity{
		ID:           identity.ID,
		DisplayName:  identity.DisplayName,
		Email:        identity.Email,
		PasswordHash: identity.PasswordHash,
	}
}

func (record redisIdentity) toIdentity() *Identity {
	return &Identity{
		ID:           record.ID,
		DisplayName:  record.DisplayName,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
	}
}
