// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"time"
)

type UploadURLRequest struct {
	Purpose     string `json:"purpose" validate:"required,oneof=LOGO PRINT_PDF"`
	ContentType string `json:"content_type" validate:"required"`
}

// SignedURL is a short lived link carrying its own credentials.
type SignedURL struct {
	FileID    string    `json:"file_id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
