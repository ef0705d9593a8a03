// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/taibuivan/aluno-api/internal/platform/ctxutil"
	"github.com/taibuivan/aluno-api/internal/platform/metrics"
	"github.com/taibuivan/aluno-api/internal/platform/sec"
)

// # Contracts & Types

// PasswordHasher hashes new passwords and checks login attempts.
type PasswordHasher interface {
	Hash(plainTextPassword string) (string, error)
	Check(plainTextPassword, existingHash string) bool
}

// TokenProvider defines the contract for issuing access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed token whose subject is the
	// identity id and whose claims carry the display name.
	GenerateAccessToken(subject, displayName string) (string, error)
}

// EventRecorder receives registration and login outcomes.
type EventRecorder interface {
	AuthEvent(event string)
}

// Service implements the register and login use cases.
type Service struct {
	store         CredentialStore
	hasher        PasswordHasher
	tokenProvider TokenProvider
	events        EventRecorder
}

// NewService constructs a new [Service] with its dependencies.
func NewService(store CredentialStore, hasher PasswordHasher, tokenProvider TokenProvider, events EventRecorder) *Service {
	return &Service{
		store:         store,
		hasher:        hasher,
		tokenProvider: tokenProvider,
		events:        events,
	}
}

// # Registration Flow

// RegisterInput holds the data required to create an identity.
type RegisterInput struct {
	DisplayName string
	Email       string
	Password    string
}

/*
Register hashes the password and persists a new identity.

Description: An early lookup skips the bcrypt cost for known emails; the
store's atomic insert remains the authority when two requests race.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Identity: Created entity
  - error: ErrDuplicateEmail, ErrPasswordTooLong or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Identity, error) {
	logger := ctxutil.GetLogger(context)

	_, err := service.store.FindByEmail(context, input.Email)
	if err == nil {
		service.events.AuthEvent(metrics.EventRegisterDuplicate)
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, ErrIdentityNotFound) {
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	passwordHash, err := service.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, sec.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	identity, err := service.store.Create(context, input.DisplayName, input.Email, passwordHash)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			service.events.AuthEvent(metrics.EventRegisterDuplicate)
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	service.events.AuthEvent(metrics.EventRegisterOK)
	logger.InfoContext(context, "identity_registered", slog.Int64("identity_id", identity.ID))

	return identity, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login checks the credentials and issues an access token.

Description: Unknown email and wrong password produce the same
[ErrInvalidCredentials] so clients cannot probe which one failed.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - string: Signed access token
  - error: ErrInvalidCredentials or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (string, error) {
	identity, err := service.store.FindByEmail(context, input.Email)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			service.events.AuthEvent(metrics.EventLoginFailed)
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	if !service.hasher.Check(input.Password, identity.PasswordHash) {
		service.events.AuthEvent(metrics.EventLoginFailed)
		return "", ErrInvalidCredentials
	}

	token, err := service.tokenProvider.GenerateAccessToken(strconv.FormatInt(identity.ID, 10), identity.DisplayName)
	if err != nil {
		return "", fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.events.AuthEvent(metrics.EventLoginOK)
	return token, nil
}
