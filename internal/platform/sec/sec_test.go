// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aluno-api/internal/platform/sec"
)

const testIssuer = "aluno-api-test"

func newHasher(t *testing.T) *sec.PasswordHasher {
	t.Helper()
	hasher, err := sec.NewPasswordHasher(10, 10)
	require.NoError(t, err)
	return hasher
}

func newTokenService(t *testing.T, secret string, ttl time.Duration) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(secret, testIssuer, ttl)
	require.NoError(t, err)
	return service
}

/*
TestPasswordHasher_RoundTrip verifies hash/check for matching and non-matching input.
*/
func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := newHasher(t)

	hash, err := hasher.Hash("s3nha")
	require.NoError(t, err)

	assert.NotEqual(t, "s3nha", hash)
	assert.True(t, hasher.Check("s3nha", hash))
	assert.False(t, hasher.Check("S3nha", hash))
	assert.False(t, hasher.Check("", hash))
}

/*
TestPasswordHasher_RandomSalt verifies two hashes of one input differ yet both check.
*/
func TestPasswordHasher_RandomSalt(t *testing.T) {
	hasher := newHasher(t)

	first, err := hasher.Hash("s3nha")
	require.NoError(t, err)
	second, err := hasher.Hash("s3nha")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("s3nha", first))
	assert.True(t, hasher.Check("s3nha", second))
}

/*
TestPasswordHasher_MalformedHash verifies a garbage hash returns false instead of panicking.
*/
func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := newHasher(t)

	for _, hash := range []string{"", "not-a-hash", "$2a$10$short"} {
		assert.False(t, hasher.Check("s3nha", hash), hash)
	}
}

/*
TestPasswordHasher_Limits covers cost bounds and the 72-byte input limit.
*/
func TestPasswordHasher_Limits(t *testing.T) {
	_, err := sec.NewPasswordHasher(4, 10)
	assert.Error(t, err)

	_, err = sec.NewPasswordHasher(32, 10)
	assert.Error(t, err)

	hasher := newHasher(t)
	_, err = hasher.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, sec.ErrPasswordTooLong)
}

/*
TestTokenService_IssueVerify verifies claims survive a round trip and expiry is one TTL out.
*/
func TestTokenService_IssueVerify(t *testing.T) {
	service := newTokenService(t, "super-secret", time.Hour)

	token, err := service.GenerateAccessToken("1", "Ana")
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "Ana", claims.DisplayName)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, testIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

/*
TestTokenService_Rejections covers every way a token must fail verification.
*/
func TestTokenService_Rejections(t *testing.T) {
	service := newTokenService(t, "right-secret", time.Hour)

	valid, err := service.GenerateAccessToken("1", "Ana")
	require.NoError(t, err)

	expired, err := newTokenService(t, "right-secret", -time.Second).GenerateAccessToken("1", "Ana")
	require.NoError(t, err)

	foreign, err := newTokenService(t, "wrong-secret", time.Hour).GenerateAccessToken("1", "Ana")
	require.NoError(t, err)

	otherIssuer, err := sec.NewTokenService("right-secret", "someone-else", time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := otherIssuer.GenerateAccessToken("1", "Ana")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"nomeUsuario": "Ana",
		"iss":         testIssuer,
		"exp":         time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"different_secret", foreign},
		{"tampered_signature", tamperSignature(valid)},
		{"wrong_issuer", wrongIssuer},
		{"alg_none", noneToken},
		{"malformed", "not.a.jwt"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifyToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}
}

/*
TestNewTokenService_EmptySecret verifies the service refuses an empty key.
*/
func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", testIssuer, time.Hour)
	assert.Error(t, err)
}

// tamperSignature flips the first character of the signature segment.
func tamperSignature(token string) string {
	dot := strings.LastIndex(token, ".")
	replacement := "A"
	if token[dot+1] == 'A' {
		replacement = "B"
	}
	return token[:dot+1] + replacement + token[dot+2:]
}
