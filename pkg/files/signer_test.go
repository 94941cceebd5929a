// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/types"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testClaims(action string) Claims {
	return Claims{
		TenantID:    "tenant-1",
		Purpose:     types.FilePrintPDF,
		Action:      action,
		ContentType: "application/pdf",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:      "file-1",
			Subject: "user-1",
		},
	}
}

func TestNewSigner_ShortSecret(t *testing.T) {
	_, err := NewSigner("too-short")
	require.ErrorIs(t, err, errMinSecretLength)
}

func TestSigner_RoundTrip(t *testing.T) {
	s, err := NewSigner(testSecret)
	require.NoError(t, err)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	token, expires, err := s.Sign(testClaims(ActionUpload), UploadURLLifetime)
	require.NoError(t, err)
	assert.Equal(t, now.Add(UploadURLLifetime), expires)

	claims, err := s.Verify(token, ActionUpload)
	require.NoError(t, err)
	assert.Equal(t, "file-1", claims.FileID())
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.Equal(t, types.FilePrintPDF, claims.Purpose)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestSigner_Verify(t *testing.T) {
	issued := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		action string
		at     time.Time
		tamper func(string) string
	}{
		{
			name:   "wrong action",
			action: ActionDownload,
			at:     issued,
		},
		{
			name:   "expired",
			action: ActionUpload,
			at:     issued.Add(UploadURLLifetime + time.Second),
		},
		{
			name:   "tampered signature",
			action: ActionUpload,
			at:     issued,
			tamper: func(token string) string {
				i := strings.LastIndexByte(token, '.') + 1
				c := byte('A')
				if token[i] == c {
					c = 'B'
				}
				return token[:i] + string(c) + token[i+1:]
			},
		},
		{
			name:   "garbage",
			action: ActionUpload,
			at:     issued,
			tamper: func(string) string { return "not-a-token" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSigner(testSecret)
			require.NoError(t, err)

			s.now = func() time.Time { return issued }
			token, _, err := s.Sign(testClaims(ActionUpload), UploadURLLifetime)
			require.NoError(t, err)

			if tc.tamper != nil {
				token = tc.tamper(token)
			}

			s.now = func() time.Time { return tc.at }
			_, err = s.Verify(token, tc.action)
			assert.True(t, errors.Is(err, errorx.ErrInvalidFileToken), "got %v", err)
		})
	}
}

func TestSigner_OtherSecret(t *testing.T) {
	a, err := NewSigner(testSecret)
	require.NoError(t, err)
	b, err := NewSigner("fedcba9876543210fedcba9876543210")
	require.NoError(t, err)

	token, _, err := a.Sign(testClaims(ActionDownload), DownloadURLLifetime)
	require.NoError(t, err)

	_, err = b.Verify(token, ActionDownload)
	assert.ErrorIs(t, err, errorx.ErrInvalidFileToken)
}
