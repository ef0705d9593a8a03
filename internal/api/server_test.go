// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/taibuivan/aluno-api/internal/api"
	"github.com/taibuivan/aluno-api/internal/core/aluno"
	"github.com/taibuivan/aluno-api/internal/platform/config"
	"github.com/taibuivan/aluno-api/internal/platform/metrics"
	"github.com/taibuivan/aluno-api/internal/platform/sec"
	"github.com/taibuivan/aluno-api/internal/users/auth"
)

const testSecret = "end-to-end-secret"

func newTestServer(t *testing.T, deps api.HealthDependencies) *httptest.Server {
	t.Helper()

	cfg := &config.Config{ServerPort: "0", Environment: "test", JWTSecret: testSecret, JWTIssuer: "aluno-api"}
	logger := slog.New(slog.DiscardHandler)

	hasher, err := sec.NewPasswordHasher(bcrypt.MinCost, bcrypt.MinCost)
	require.NoError(t, err)
	tokens, err := sec.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, time.Hour)
	require.NoError(t, err)
	collector := metrics.New()

	docs, err := api.NewDocsHandler(api.NewOpenAPIDocument("http://localhost:3000"))
	require.NoError(t, err)

	liveness, readiness := api.NewHealthHandlers(deps)
	server := api.NewServer(cfg, logger, tokens, collector, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(auth.NewService(auth.NewMemoryCredentialStore(), hasher, tokens, collector)),
		Aluno:     aluno.NewHandler(aluno.NewService(aluno.NewMemoryRepository(aluno.Sample))),
		Docs:      docs,
	})

	testServer := httptest.NewServer(server.Handler())
	t.Cleanup(testServer.Close)
	return testServer
}

type client struct {
	t    *testing.T
	base string
}

func (c client) call(method, path, token, body string) (int, string) {
	c.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request, err := http.NewRequest(method, c.base+path, reader)
	require.NoError(c.t, err)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := http.DefaultClient.Do(request)
	require.NoError(c.t, err)
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	require.NoError(c.t, err)
	return response.StatusCode, string(payload)
}

func message(t *testing.T, body string) string {
	t.Helper()
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &decoded), body)
	return decoded["message"]
}

func TestEndToEnd_RegisterLoginAndGate(t *testing.T) {
	c := client{t: t, base: newTestServer(t, api.HealthDependencies{}).URL}

	status, body := c.call(http.MethodPost, "/auth/register", "", `{"nome":"Ana","email":"ana@x.com","senha":"s3nha"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Usuario Cadastrado", message(t, body))

	status, body = c.call(http.MethodPost, "/auth/register", "", `{"nome":"Ana","email":"ana@x.com","senha":"s3nha"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "E-mail já existente", message(t, body))

	status, body = c.call(http.MethodPost, "/auth/login", "", `{"email":"ana@x.com","senha":"s3nha"}`)
	require.Equal(t, http.StatusOK, status)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(t, login.Token)

	status, body = c.call(http.MethodGet, "/aluno", login.Token, "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":1,"ra":123,"nome":"Fulano"}]`, body)

	status, body = c.call(http.MethodGet, "/aluno", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token Invalido", message(t, body))

	tampered := []byte(login.Token)
	index := strings.LastIndex(login.Token, ".") + 1
	if tampered[index] == 'A' {
		tampered[index] = 'B'
	} else {
		tampered[index] = 'A'
	}
	status, body = c.call(http.MethodGet, "/aluno", string(tampered), "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Acesso negado", message(t, body))

	foreignTokens, err := sec.NewTokenService("another-secret", "aluno-api", time.Hour)
	require.NoError(t, err)
	foreign, err := foreignTokens.GenerateAccessToken("1", "Ana")
	require.NoError(t, err)
	status, _ = c.call(http.MethodGet, "/aluno", foreign, "")
	assert.Equal(t, http.StatusForbidden, status)

	status, body = c.call(http.MethodPost, "/auth/login", "", `{"email":"ana@x.com","senha":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Credenciais Invalidas", message(t, body))

	status, body = c.call(http.MethodPost, "/auth/login", "", `{"email":"ninguem@x.com","senha":"s3nha"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Credenciais Invalidas", message(t, body))
}

func TestEndToEnd_AlunoCRUD(t *testing.T) {
	c := client{t: t, base: newTestServer(t, api.HealthDependencies{}).URL}

	status, _ := c.call(http.MethodPost, "/auth/register", "", `{"nome":"Ana","email":"ana@x.com","senha":"s3nha"}`)
	require.Equal(t, http.StatusCreated, status)
	_, body := c.call(http.MethodPost, "/auth/login", "", `{"email":"ana@x.com","senha":"s3nha"}`)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &login))

	status, body = c.call(http.MethodPost, "/aluno", login.Token, `{"ra":456,"nome":"Beltrano"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":2,"ra":456,"nome":"Beltrano"}`, body)

	status, body = c.call(http.MethodPut, "/aluno/2", login.Token, `{"ra":457,"nome":"Beltrano Silva"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":2,"ra":457,"nome":"Beltrano Silva"}`, body)

	status, body = c.call(http.MethodPut, "/aluno/9", login.Token, `{"ra":1,"nome":"X"}`)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Cara tem certeza que é esse id?", message(t, body))

	status, _ = c.call(http.MethodPut, "/aluno/2", "", `{"ra":1,"nome":"X"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestEndToEnd_Infrastructure(t *testing.T) {
	c := client{t: t, base: newTestServer(t, api.HealthDependencies{}).URL}

	status, body := c.call(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	status, body = c.call(http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ready","checks":[]}`, body)

	status, body = c.call(http.MethodGet, "/api-docs/openapi.yaml", "", "")
	require.Equal(t, http.StatusOK, status)
	var document map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(body), &document))
	assert.Equal(t, "3.0.3", document["openapi"])
	paths, ok := document["paths"].(map[string]any)
	require.True(t, ok)
	for _, path := range []string{"/aluno", "/aluno/{id}", "/auth/register", "/auth/login"} {
		assert.Contains(t, paths, path)
	}

	status, body = c.call(http.MethodGet, "/api-docs/openapi.json", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, json.Valid([]byte(body)))

	status, body = c.call(http.MethodGet, "/api-docs", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "swagger-ui")

	// Traffic above must show up under route patterns, not raw paths.
	status, body = c.call(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `route="/health"`)
	assert.Contains(t, body, `route="/api-docs/openapi.yaml"`)
}

func TestEndToEnd_ReadinessDegraded(t *testing.T) {
	c := client{t: t, base: newTestServer(t, api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckRedis:    func(context.Context) error { return errors.New("connection refused") },
	}).URL}

	status, body := c.call(http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.JSONEq(t, `{"status":"degraded","checks":[{"name":"postgres","ok":true},{"name":"redis","ok":false}]}`, body)
	assert.NotContains(t, body, "connection refused")
}
