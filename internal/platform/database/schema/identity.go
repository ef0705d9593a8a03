// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names used by the Postgres stores.
// It mirrors the files under /migrations.
package schema

// IdentityTableRef represents the 'identity' table
type IdentityTableRef struct {
	Table        string
	ID           string
	DisplayName  string
	Email        string
	PasswordHash string
	CreatedAt    string
}

// IdentityTable is the schema definition for identity
var IdentityTable = IdentityTableRef{
	Table:        "identity",
	ID:           "id",
	DisplayName:  "display_name",
	Email:        "email",
	PasswordHash: "password_hash",
	CreatedAt:    "created_at",
}

// Columns returns the columns read back into an Identity, in scan order.
func (t IdentityTableRef) Columns() []string {
	return []string{t.ID, t.DisplayName, t.Email, t.PasswordHash}
}
