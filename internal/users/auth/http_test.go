// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aluno-api/internal/users/auth"
)

func postJSON(t *testing.T, handler http.Handler, path, body string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded), recorder.Body.String())
	return recorder, decoded
}

func TestHandler_Register(t *testing.T) {
	f := newFixture(t)
	router := auth.NewHandler(f.service).Routes()

	recorder, body := postJSON(t, router, "/register", `{"nome":"Ana","email":"ana@x.com","senha":"s3nha"}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, auth.MessageRegistered, body["message"])

	recorder, body = postJSON(t, router, "/register", `{"nome":"Ana","email":"ana@x.com","senha":"s3nha"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, auth.MessageDuplicateEmail, body["message"])
	assert.Equal(t, "DUPLICATE_EMAIL", body["code"])

	recorder, body = postJSON(t, router, "/register", `{"nome":`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestHandler_Login(t *testing.T) {
	f := newFixture(t)
	router := auth.NewHandler(f.service).Routes()

	recorder, _ := postJSON(t, router, "/register", `{"nome":"Ana","email":"ana@x.com","senha":"s3nha"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder, body := postJSON(t, router, "/login", `{"email":"ana@x.com","senha":"s3nha"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Len(t, body, 1)

	claims, err := f.tokens.VerifyToken(body["token"])
	require.NoError(t, err)
	assert.Equal(t, "Ana", claims.DisplayName)

	for _, payload := range []string{
		`{"email":"ana@x.com","senha":"errada"}`,
		`{"email":"ninguem@x.com","senha":"s3nha"}`,
	} {
		recorder, body = postJSON(t, router, "/login", payload)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, auth.MessageInvalidCredentials, body["message"])
	}
}
