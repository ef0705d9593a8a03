// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the credential lifecycle: registration, login and
the stores that hold registered identities.

# Architecture

  - Service: Orchestrates hashing, uniqueness and token issuance.
  - CredentialStore: Memory, Postgres and Redis implementations, each with an
    atomic check-and-insert on email and an atomic id generator.
  - Handler: The /auth HTTP surface.

Token verification for protected routes lives in the middleware package; this
package only issues tokens.
*/
package auth

import (
	"errors"
	"net/http"

	"github.com/taibuivan/aluno-api/internal/platform/apperr"
)

// # Domain Entities

// Identity is a registered account. It is created by registration only and
// never mutated afterwards.
type Identity struct {
	ID           int64  `json:"id"`
	DisplayName  string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Explicitly omitted from JSON for security.
}

// # Client Messages

const (
	MessageRegistered         = "Usuario Cadastrado"
	MessageDuplicateEmail     = "E-mail já existente"
	MessageInvalidCredentials = "Credenciais Invalidas"
	MessagePasswordTooLong    = "Senha excede o limite de 72 bytes"
)

// # Errors

var (
	// ErrIdentityNotFound is returned by stores when no identity has the email.
	ErrIdentityNotFound = errors.New("auth: identity not found")

	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = apperr.BadRequest("DUPLICATE_EMAIL", MessageDuplicateEmail)

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = &apperr.AppError{
		Code:       "INVALID_CREDENTIALS",
		Message:    MessageInvalidCredentials,
		HTTPStatus: http.StatusUnauthorized,
	}

	// ErrPasswordTooLong is returned when bcrypt cannot accept the password.
	ErrPasswordTooLong = apperr.ValidationError(MessagePasswordTooLong)
)
