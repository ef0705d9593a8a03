// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/aluno-api/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the mapping of driver errors to sentinels.
*/
func TestWrap_Classification(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "identity_email_key"}
	other := &pgconn.PgError{Code: pgerrcode.UndefinedTable}

	assert.NoError(t, dberr.Wrap(nil, "noop"))
	assert.ErrorIs(t, dberr.Wrap(pgx.ErrNoRows, "find"), dberr.ErrNotFound)
	assert.ErrorIs(t, dberr.Wrap(fmt.Errorf("exec: %w", unique), "insert"), dberr.ErrUniqueViolation)

	wrapped := dberr.Wrap(other, "select")
	assert.False(t, errors.Is(wrapped, dberr.ErrUniqueViolation))
	assert.False(t, errors.Is(wrapped, dberr.ErrNotFound))
	assert.Contains(t, wrapped.Error(), "select")
}
