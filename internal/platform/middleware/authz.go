// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/aluno-api/internal/platform/apperr"
	"github.com/taibuivan/aluno-api/internal/platform/constants"
	"github.com/taibuivan/aluno-api/internal/platform/ctxutil"
	"github.com/taibuivan/aluno-api/internal/platform/metrics"
	"github.com/taibuivan/aluno-api/internal/platform/respond"
	"github.com/taibuivan/aluno-api/internal/platform/sec"
)

// Client-facing gate messages. The 403 text is identical for every
// verification failure.
const (
	MessageMissingToken = "Token Invalido"
	MessageAccessDenied = "Acesso negado"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// EventRecorder receives gate outcomes. [*metrics.Metrics] implements it.
type EventRecorder interface {
	AuthEvent(event string)
}

// Authenticate gates a route group behind a bearer token.
//
// # Flow
//  1. No 'Authorization: Bearer <token>' header, or any other scheme: 401.
//  2. Token present but verification fails for any reason: 403.
//  3. Token verified: [*sec.AuthClaims] is injected into the request context
//     and the request proceeds untouched.
func Authenticate(verifier TokenVerifier, recorder EventRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			logger := ctxutil.GetLogger(request.Context())

			// ── 1. Extraction ─────────────────────────────────────────────────
			tokenStr, ok := bearerToken(request)
			if !ok {
				recorder.AuthEvent(metrics.EventGateMissingToken)
				respond.Error(writer, request, apperr.Unauthorized(MessageMissingToken))
				return
			}

			// ── 2. Verification ───────────────────────────────────────────────
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				recorder.AuthEvent(metrics.EventGateInvalidToken)
				logger.DebugContext(request.Context(), "auth_gate_rejected", slog.Any("error", err))
				respond.Error(writer, request, apperr.Forbidden(MessageAccessDenied))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			recorder.AuthEvent(metrics.EventGatePassed)
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			ctx = ctxutil.WithLogger(ctx, logger.With(slog.String("user_id", claims.Subject)))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// bearerToken returns the token of a well-formed "Bearer <token>" header.
func bearerToken(request *http.Request) (string, bool) {
	parts := strings.Fields(request.Header.Get(constants.HeaderAuthorization))
	if len(parts) != 2 || !strings.EqualFold(parts[0], constants.BearerScheme) {
		return "", false
	}
	return parts[1], true
}
