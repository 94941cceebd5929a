// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/tracing"
)

// Config selects how access tokens are checked. JWKSURL skips discovery.
type Config struct {
	Issuer          string
	JWKSURL         string
	AllowedSubjects []string
	RequiredScope   string
}

// NewJWTAuthenticator builds a verifier for tokens minted by the issuer.
func NewJWTAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if cfg.Issuer == "" {
		return nil, errors.New("issuer is required for JWT authentication")
	}

	var (
		verifier *oidc.IDTokenVerifier
		err      error
	)

	if cfg.JWKSURL != "" {
		logger.Infof("using JWKS URL %s for issuer %s", cfg.JWKSURL, cfg.Issuer)
		verifier = NewKeySetVerifier(ctx, cfg.Issuer, cfg.JWKSURL)
	} else {
		logger.Infof("using OIDC discovery for issuer %s", cfg.Issuer)
		verifier, err = NewDiscoveryVerifier(ctx, cfg.Issuer)
		if err != nil {
			return nil, fmt.Errorf("failed to create OIDC verifier: %w", err)
		}
	}

	return NewJWTVerifier(verifier, cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
}
