// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package files

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package files -destination ./mock_interfaces.go -source=./interfaces.go

type mocks struct {
	storage *MockStorageInterface
	authz   *MockAuthzInterface
	auditor *MockAuditorInterface
	tx      *MockTxInterface
}

func newTestService(t *testing.T, ctrl *gomock.Controller, maxBytes int64) (*Service, *mocks) {
	t.Helper()

	m := &mocks{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
		auditor: NewMockAuditorInterface(ctrl),
		tx:      NewMockTxInterface(ctrl),
	}
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	signer, err := NewSigner(testSecret)
	if err != nil {
		t.Fatalf("failed to build signer: %v", err)
	}

	logger := logging.NewNoopLogger()
	s := NewService("https://glass.example.com/", maxBytes, signer, m.storage, m.authz, m.auditor, m.tx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	return s, m
}

func principal() *authorization.Principal {
	return &authorization.Principal{
		User:        &types.User{ID: "user-1"},
		TenantID:    "tenant-1",
		Role:        types.RoleAdmin,
		Permissions: authorization.RolePermissions(types.RoleAdmin),
	}
}

func tokenOf(t *testing.T, link string) string {
	t.Helper()

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("invalid link %s: %v", link, err)
	}
	return u.Query().Get("token")
}

func TestService_RequestUpload(t *testing.T) {
	testCases := []struct {
		name        string
		req         *UploadURLRequest
		expectedErr error
	}{
		{
			name: "print pdf",
			req:  &UploadURLRequest{Purpose: "PRINT_PDF", ContentType: "application/pdf"},
		},
		{
			name: "logo",
			req:  &UploadURLRequest{Purpose: "LOGO", ContentType: "image/png"},
		},
		{
			name:        "logo must be an image",
			req:         &UploadURLRequest{Purpose: "LOGO", ContentType: "application/pdf"},
			expectedErr: errorx.ErrInvalidValue,
		},
		{
			name:        "print file must be a pdf",
			req:         &UploadURLRequest{Purpose: "PRINT_PDF", ContentType: "image/jpeg"},
			expectedErr: errorx.ErrInvalidValue,
		},
		{
			name:        "unknown purpose",
			req:         &UploadURLRequest{Purpose: "AVATAR", ContentType: "image/png"},
			expectedErr: errorx.ErrInvalidValue,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl, 1024)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermFilesUpload).Return(principal(), nil)

			signed, err := s.RequestUpload(context.Background(), tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(signed.URL, "https://glass.example.com/api/v0/files/upload?token=") {
				t.Fatalf("unexpected url %s", signed.URL)
			}
			if signed.FileID == "" {
				t.Fatal("expected a file id")
			}
		})
	}
}

func TestService_Upload(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		body        string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:        "stored",
			contentType: "application/pdf",
			body:        "%PDF-1.7",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateStoredFile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, f *types.StoredFile) (*types.StoredFile, error) {
						if f.TenantID != "tenant-1" || f.Size != 8 || f.CreatedBy != "user-1" {
							t.Errorf("unexpected file %+v", f)
						}
						return f, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e audit.Entry) error {
						if e.Action != "file.upload" || e.ActorID != "user-1" {
							t.Errorf("unexpected audit entry %+v", e)
						}
						return nil
					},
				)
			},
		},
		{
			name:        "charset parameter is ignored",
			contentType: "Application/PDF; charset=binary",
			body:        "%PDF",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateStoredFile(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, f *types.StoredFile) (*types.StoredFile, error) { return f, nil },
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:        "different content type",
			contentType: "image/png",
			body:        "png",
			setupMocks:  func(*mocks) {},
			expectedErr: errorx.ErrInvalidValue,
		},
		{
			name:        "too large",
			contentType: "application/pdf",
			body:        strings.Repeat("a", 17),
			setupMocks:  func(*mocks) {},
			expectedErr: errorx.ErrFileTooLarge,
		},
		{
			name:        "empty body",
			contentType: "application/pdf",
			setupMocks:  func(*mocks) {},
			expectedErr: errorx.ErrRequiredField,
		},
		{
			name:        "url used twice",
			contentType: "application/pdf",
			body:        "%PDF",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().CreateStoredFile(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: errorx.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl, 16)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermFilesUpload).Return(principal(), nil)
			signed, err := s.RequestUpload(context.Background(), &UploadURLRequest{Purpose: "PRINT_PDF", ContentType: "application/pdf"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.setupMocks(m)

			_, err = s.Upload(context.Background(), tokenOf(t, signed.URL), tc.contentType, strings.NewReader(tc.body))

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_UploadRejectsDownloadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(t, ctrl, 16)
	m.authz.EXPECT().RequireTenant(gomock.Any()).Return(principal(), nil)
	m.storage.EXPECT().GetStoredFileByID(gomock.Any(), "file-1", false).Return(&types.StoredFile{ID: "file-1", TenantID: "tenant-1", ContentType: "application/pdf"}, nil)

	signed, err := s.RequestDownload(context.Background(), "file-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = s.Upload(context.Background(), tokenOf(t, signed.URL), "application/pdf", strings.NewReader("%PDF"))
	if !errors.Is(err, errorx.ErrInvalidFileToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestService_Download(t *testing.T) {
	testCases := []struct {
		name        string
		stored      *types.StoredFile
		storedErr   error
		expectedErr error
	}{
		{
			name:   "same tenant",
			stored: &types.StoredFile{ID: "file-1", TenantID: "tenant-1", Data: []byte("%PDF")},
		},
		{
			name:        "deleted in between",
			storedErr:   storage.ErrNotFound,
			expectedErr: errorx.ErrNotFound,
		},
		{
			name:        "tenant mismatch",
			stored:      &types.StoredFile{ID: "file-1", TenantID: "tenant-2"},
			expectedErr: errorx.ErrInvalidFileToken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(t, ctrl, 16)
			m.authz.EXPECT().RequireTenant(gomock.Any()).Return(principal(), nil)
			m.storage.EXPECT().GetStoredFileByID(gomock.Any(), "file-1", false).Return(&types.StoredFile{ID: "file-1", TenantID: "tenant-1", ContentType: "application/pdf"}, nil)

			signed, err := s.RequestDownload(context.Background(), "file-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			m.storage.EXPECT().GetStoredFileByID(gomock.Any(), "file-1", true).Return(tc.stored, tc.storedErr)

			f, err := s.Download(context.Background(), tokenOf(t, signed.URL))

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(f.Data) != "%PDF" {
				t.Fatalf("unexpected data %q", f.Data)
			}
		})
	}
}

func TestService_RequestDownloadOtherTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(t, ctrl, 16)
	m.authz.EXPECT().RequireTenant(gomock.Any()).Return(principal(), nil)
	m.storage.EXPECT().GetStoredFileByID(gomock.Any(), "file-9", false).Return(&types.StoredFile{ID: "file-9", TenantID: "tenant-2"}, nil)

	_, err := s.RequestDownload(context.Background(), "file-9")
	if !errors.Is(err, errorx.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_DeleteFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(t, ctrl, 16)
	m.storage.EXPECT().DeleteStoredFile(gomock.Any(), "file-1").Return(nil)
	m.storage.EXPECT().DeleteStoredFile(gomock.Any(), "file-2").Return(storage.ErrNotFound)

	if err := s.DeleteFile(context.Background(), "file-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.DeleteFile(context.Background(), "file-2"); err != nil {
		t.Fatalf("missing files should be ignored, got %v", err)
	}
}
