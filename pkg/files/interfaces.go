// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"context"
	"io"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	RequestUpload(context.Context, *UploadURLRequest) (*SignedURL, error)
	Upload(context.Context, string, string, io.Reader) (*types.StoredFile, error)
	RequestDownload(context.Context, string) (*SignedURL, error)
	Download(context.Context, string) (*types.StoredFile, error)
	DeleteFile(context.Context, string) error
}

type StorageInterface interface {
	CreateStoredFile(ctx context.Context, f *types.StoredFile) (*types.StoredFile, error)
	GetStoredFileByID(ctx context.Context, id string, withData bool) (*types.StoredFile, error)
	DeleteStoredFile(ctx context.Context, id string) error
}

type AuthzInterface interface {
	Require(ctx context.Context, perm authorization.Permission) (*authorization.Principal, error)
	RequireTenant(ctx context.Context) (*authorization.Principal, error)
}

type AuditorInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
