// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	baseURL  string
	maxBytes int64

	signer  *Signer
	storage StorageInterface
	authz   AuthzInterface
	auditor AuditorInterface
	db      TxInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequestUpload reserves a file id and signs a URL the client PUTs the bytes to.
func (s *Service) RequestUpload(ctx context.Context, req *UploadURLRequest) (*SignedURL, error) {
	ctx, span := s.tracer.Start(ctx, "files.Service.RequestUpload")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermFilesUpload)
	if err != nil {
		return nil, err
	}

	purpose := types.FilePurpose(req.Purpose)
	if !purpose.Valid() {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "purpose"})
	}
	if !acceptsContentType(purpose, req.ContentType) {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "content_type"})
	}

	id := uuid.NewString()
	token, expires, err := s.signer.Sign(Claims{
		TenantID:    p.TenantID,
		Purpose:     purpose,
		Action:      ActionUpload,
		ContentType: req.ContentType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:      id,
			Subject: p.UserID(),
		},
	}, UploadURLLifetime)
	if err != nil {
		return nil, errorx.ErrInternal.Wrap(err)
	}

	return &SignedURL{FileID: id, URL: s.link("upload", token), ExpiresAt: expires}, nil
}

// Upload stores the body sent to a signed upload URL. The token is the only
// credential, the request is not tied to a session.
func (s *Service) Upload(ctx context.Context, token, contentType string, body io.Reader) (*types.StoredFile, error) {
	ctx, span := s.tracer.Start(ctx, "files.Service.Upload")
	defer span.End()

	claims, err := s.signer.Verify(token, ActionUpload)
	if err != nil {
		s.logger.Security().AuthnFailure("file-upload", err.Error())
		return nil, err
	}

	if contentType != "" && !sameMediaType(contentType, claims.ContentType) {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "content_type"})
	}

	data, err := io.ReadAll(io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		return nil, errorx.ErrInvalidInput.Wrap(err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, errorx.ErrFileTooLarge.WithData(map[string]interface{}{"max": s.maxBytes})
	}
	if len(data) == 0 {
		return nil, errorx.ErrRequiredField.WithData(map[string]interface{}{"field": "body"})
	}

	var created *types.StoredFile
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.storage.CreateStoredFile(ctx, &types.StoredFile{
			ID:          claims.FileID(),
			TenantID:    claims.TenantID,
			Purpose:     claims.Purpose,
			ContentType: claims.ContentType,
			Size:        int64(len(data)),
			Data:        data,
			CreatedBy:   claims.Subject,
		})
		if err != nil {
			// a second upload with the same URL hits the primary key
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   claims.TenantID,
			ActorID:    claims.Subject,
			Action:     "file.upload",
			EntityType: "file",
			EntityID:   created.ID,
			After:      created,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) RequestDownload(ctx context.Context, id string) (*SignedURL, error) {
	ctx, span := s.tracer.Start(ctx, "files.Service.RequestDownload")
	defer span.End()

	p, err := s.authz.RequireTenant(ctx)
	if err != nil {
		return nil, err
	}

	f, err := s.storage.GetStoredFileByID(ctx, id, false)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, f.TenantID); err != nil {
		return nil, err
	}

	token, expires, err := s.signer.Sign(Claims{
		TenantID:    f.TenantID,
		Purpose:     f.Purpose,
		Action:      ActionDownload,
		ContentType: f.ContentType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:      f.ID,
			Subject: p.UserID(),
		},
	}, DownloadURLLifetime)
	if err != nil {
		return nil, errorx.ErrInternal.Wrap(err)
	}

	return &SignedURL{FileID: f.ID, URL: s.link("download", token), ExpiresAt: expires}, nil
}

func (s *Service) Download(ctx context.Context, token string) (*types.StoredFile, error) {
	ctx, span := s.tracer.Start(ctx, "files.Service.Download")
	defer span.End()

	claims, err := s.signer.Verify(token, ActionDownload)
	if err != nil {
		s.logger.Security().AuthnFailure("file-download", err.Error())
		return nil, err
	}

	f, err := s.storage.GetStoredFileByID(ctx, claims.FileID(), true)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if f.TenantID != claims.TenantID {
		return nil, errorx.ErrInvalidFileToken
	}

	return f, nil
}

// DeleteFile drops a stored file on behalf of a system job. Missing files
// are not an error.
func (s *Service) DeleteFile(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "files.Service.DeleteFile")
	defer span.End()

	err := s.storage.DeleteStoredFile(ctx, id)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return storage.DomainError(err)
	}

	return nil
}

func (s *Service) link(action, token string) string {
	return fmt.Sprintf("%s/api/v0/files/%s?token=%s", strings.TrimRight(s.baseURL, "/"), action, url.QueryEscape(token))
}

func acceptsContentType(purpose types.FilePurpose, contentType string) bool {
	ct := mediaType(contentType)
	switch purpose {
	case types.FileLogo:
		return strings.HasPrefix(ct, "image/")
	case types.FilePrintPDF:
		return ct == "application/pdf"
	}
	return false
}

func sameMediaType(a, b string) bool {
	return mediaType(a) == mediaType(b)
}

func mediaType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func NewService(
	baseURL string,
	maxBytes int64,
	signer *Signer,
	storage StorageInterface,
	authz AuthzInterface,
	auditor AuditorInterface,
	db TxInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		baseURL:  baseURL,
		maxBytes: maxBytes,
		signer:   signer,
		storage:  storage,
		authz:    authz,
		auditor:  auditor,
		db:       db,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
