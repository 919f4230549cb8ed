// Copyright (c) 2025-2026 Rubyet Hossain
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rubyet/webfolio/internal/auth"
)

// ContextKeyClaims is the context key for verified token claims.
const ContextKeyClaims ContextKey = "claims"

// RequireAuth creates middleware that validates a Bearer token against
// the issuer and stores the claims in the request context. Every failure
// mode produces the same 401 so callers learn nothing about why.
func RequireAuth(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := bearerClaims(r, issuer)
			if !ok {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized", "Not authorized")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerClaims(r *http.Request, issuer *auth.TokenIssuer) (*auth.Claims, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return nil, false
	}

	claims, err := issuer.Verify(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// GetClaims returns the verified claims stored by RequireAuth, or nil
// outside an authenticated request.
func GetClaims(r *http.Request) *auth.Claims {
	claims, _ := r.Context().Value(ContextKeyClaims).(*auth.Claims)
	return claims
}
