// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aluno-api/internal/platform/apperr"
	"github.com/taibuivan/aluno-api/internal/platform/respond"
)

/*
TestError_AppError verifies status and envelope for a wrapped AppError.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, fmt.Errorf("wrapped: %w", apperr.Forbidden("Acesso negado")))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	var body respond.ErrorEnvelope
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.Equal(t, "Acesso negado", body.Message)
	assert.Equal(t, "FORBIDDEN", body.Code)
}

/*
TestError_PlainError verifies unknown errors become a generic 500.
*/
func TestError_PlainError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, errors.New("dial tcp 10.0.0.1:5432: refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "10.0.0.1")
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

/*
TestMessage verifies the confirmation body shape.
*/
func TestMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Message(recorder, http.StatusCreated, "Usuario Cadastrado")

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"message":"Usuario Cadastrado"}`, recorder.Body.String())
}
