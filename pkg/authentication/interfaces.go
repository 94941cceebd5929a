// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	// VerifyToken checks a raw JWT and returns its subject when the caller
	// may use the API.
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}
