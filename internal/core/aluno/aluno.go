// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package aluno implements the student resource served behind the auth gate.
package aluno

import "github.com/taibuivan/aluno-api/internal/platform/apperr"

// Aluno is a student record.
type Aluno struct {
	ID   int64  `json:"id"`
	RA   int64  `json:"ra"`
	Nome string `json:"nome"`
}

// Sample is the record seeded into a fresh memory store.
var Sample = Aluno{ID: 1, RA: 123, Nome: "Fulano"}

// MessageNotFound is returned for unknown or non-numeric ids.
const MessageNotFound = "Cara tem certeza que é esse id?"

// ErrNotFound is the client-facing 404.
var ErrNotFound = apperr.NotFound(MessageNotFound)
