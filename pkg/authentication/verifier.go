// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

// accessClaims is the part of a Hydra access token the service reads.
// Hydra puts granted scopes in "scp", other issuers use a "scope" string.
type accessClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c *accessClaims) hasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope) || slices.Contains(strings.Fields(c.Scope), scope)
}

// JWTVerifier accepts user tokens that carry the required scope. Service
// accounts listed in allowedSubjects, such as the admin CLI client, pass
// without it.
type JWTVerifier struct {
	verifier        *oidc.IDTokenVerifier
	allowedSubjects []string
	requiredScope   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		v.reject("invalid")
		return "", err
	}

	var claims accessClaims
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		v.reject("claims")
		return "", err
	}

	if claims.Subject == "" {
		v.reject("no_subject")
		return "", fmt.Errorf("unauthorized: token has no subject")
	}

	if slices.Contains(v.allowedSubjects, claims.Subject) {
		return claims.Subject, nil
	}

	if v.requiredScope == "" || claims.hasScope(v.requiredScope) {
		return claims.Subject, nil
	}

	v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
	v.reject("scope")
	return "", fmt.Errorf("unauthorized: missing scope %s", v.requiredScope)
}

func (v *JWTVerifier) reject(reason string) {
	if err := v.monitor.IncDomainEvent(map[string]string{"event": "token_rejected", "detail": reason}); err != nil {
		v.logger.Debugf("failed to count token rejection: %v", err)
	}
}

func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:        verifier,
		allowedSubjects: allowedSubjects,
		requiredScope:   requiredScope,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}
