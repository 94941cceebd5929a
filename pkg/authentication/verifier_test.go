// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

const testIssuer = "https://auth.glass.example.com"

func newTestVerifier(t *testing.T, allowed []string, scope string) (*JWTVerifier, *rsa.PrivateKey) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}
	logger := logging.NewNoopLogger()

	return NewJWTVerifier(
		oidc.NewVerifier(testIssuer, keySet, verifierConfig),
		allowed,
		scope,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	), key
}

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()

	base := jwt.MapClaims{
		"iss": testIssuer,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	for k, v := range claims {
		base[k] = v
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, base).SignedString(key)
	require.NoError(t, err)
	return raw
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	testCases := []struct {
		name            string
		allowed         []string
		scope           string
		claims          jwt.MapClaims
		expectedSubject string
		expectErr       bool
	}{
		{
			name:            "no scope required",
			claims:          jwt.MapClaims{"sub": "identity-1"},
			expectedSubject: "identity-1",
		},
		{
			name:            "scope in scp",
			scope:           "glassworks",
			claims:          jwt.MapClaims{"sub": "identity-1", "scp": []string{"openid", "glassworks"}},
			expectedSubject: "identity-1",
		},
		{
			name:            "scope in scope string",
			scope:           "glassworks",
			claims:          jwt.MapClaims{"sub": "identity-1", "scope": "openid glassworks"},
			expectedSubject: "identity-1",
		},
		{
			name:      "missing scope",
			scope:     "glassworks",
			claims:    jwt.MapClaims{"sub": "identity-1", "scope": "openid"},
			expectErr: true,
		},
		{
			name:            "allowed service account without scope",
			allowed:         []string{"admin-cli"},
			scope:           "glassworks",
			claims:          jwt.MapClaims{"sub": "admin-cli"},
			expectedSubject: "admin-cli",
		},
		{
			name:      "no subject",
			claims:    jwt.MapClaims{"scope": "glassworks"},
			expectErr: true,
		},
		{
			name:      "expired",
			claims:    jwt.MapClaims{"sub": "identity-1", "exp": time.Now().Add(-time.Hour).Unix()},
			expectErr: true,
		},
		{
			name:      "other issuer",
			claims:    jwt.MapClaims{"sub": "identity-1", "iss": "https://evil.example.com"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, key := newTestVerifier(t, tc.allowed, tc.scope)

			subject, err := v.VerifyToken(context.Background(), sign(t, key, tc.claims))

			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedSubject, subject)
		})
	}
}

func TestJWTVerifier_RejectsForeignKey(t *testing.T) {
	v, _ := newTestVerifier(t, nil, "")

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	_, err = v.VerifyToken(context.Background(), sign(t, other, jwt.MapClaims{"sub": "identity-1"}))
	assert.Error(t, err)
}
