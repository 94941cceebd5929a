// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/types"
)

const (
	ActionUpload   = "upload"
	ActionDownload = "download"

	UploadURLLifetime   = 10 * time.Minute
	DownloadURLLifetime = 5 * time.Minute
)

var errMinSecretLength = errors.New("file url secret must be at least 32 characters")

// Claims scope a signed URL to one file of one tenant and one action.
type Claims struct {
	TenantID    string            `json:"tid"`
	Purpose     types.FilePurpose `json:"purpose"`
	Action      string            `json:"act"`
	ContentType string            `json:"ctype,omitempty"`
	jwt.RegisteredClaims
}

// FileID is the id the URL grants access to.
func (c *Claims) FileID() string {
	return c.ID
}

// Signer issues and checks HS256 tokens embedded in file URLs.
type Signer struct {
	secret []byte
	now    func() time.Time
}

func (s *Signer) Sign(c Claims, ttl time.Duration) (string, time.Time, error) {
	now := s.now()
	expires := now.Add(ttl)

	c.IssuedAt = jwt.NewNumericDate(now)
	c.NotBefore = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(expires)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expires, nil
}

// Verify parses token and checks it was issued for action.
func (s *Signer) Verify(token, action string) (*Claims, error) {
	claims := new(Claims)

	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, errorx.ErrInvalidFileToken.Wrap(err)
	}

	if claims.Action != action || claims.ID == "" || claims.TenantID == "" {
		return nil, errorx.ErrInvalidFileToken
	}

	return claims, nil
}

func NewSigner(secret string) (*Signer, error) {
	if len(secret) < 32 {
		return nil, errMinSecretLength
	}

	s := new(Signer)
	s.secret = []byte(secret)
	s.now = time.Now

	return s, nil
}
