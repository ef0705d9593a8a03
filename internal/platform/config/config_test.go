// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aluno-api/internal/platform/config"
)

/*
TestLoad_Defaults verifies defaults when only the secret is provided.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, config.DriverMemory, cfg.StorageDriver)
	assert.True(t, cfg.SeedSampleAluno)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_MissingSecret verifies the server refuses to start without a signing secret.
*/
func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

/*
TestLoad_Validation covers cross-field rules.
*/
func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		hasError bool
	}{
		{"cost_too_low", map[string]string{"BCRYPT_COST": "4"}, true},
		{"cost_too_high", map[string]string{"BCRYPT_COST": "40"}, true},
		{"postgres_without_dsn", map[string]string{"STORAGE_DRIVER": "postgres"}, true},
		{"redis_without_url", map[string]string{"STORAGE_DRIVER": "redis"}, true},
		{"unknown_driver", map[string]string{"STORAGE_DRIVER": "mongo"}, true},
		{"postgres_with_dsn", map[string]string{"STORAGE_DRIVER": "Postgres", "DATABASE_URL": "postgres://localhost/db"}, false},
		{"cors_list", map[string]string{"CORS_ORIGINS": "https://a.example,https://b.example"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "test-secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.name == "postgres_with_dsn" {
				assert.Equal(t, config.DriverPostgres, cfg.StorageDriver)
			}
			if tt.name == "cors_list" {
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
			}
		})
	}
}
