// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package printjobs

import (
	"context"
	"errors"
	"testing"
	"time"

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

//go:generate mockgen -build_flags=--mod=mod -package printjobs -destination ./mock_interfaces.go -source=./interfaces.go

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

type mocks struct {
	storage  *MockStorageInterface
	notifier *MockNotifierInterface
	files    *MockFilesInterface
	authz    *MockAuthzInterface
	auditor  *MockAuditorInterface
	tx       *MockTxInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:  NewMockStorageInterface(ctrl),
		notifier: NewMockNotifierInterface(ctrl),
		files:    NewMockFilesInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		auditor:  NewMockAuditorInterface(ctrl),
		tx:       NewMockTxInterface(ctrl),
	}
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	logger := logging.NewNoopLogger()
	s := NewService(m.storage, m.notifier, m.files, m.authz, m.auditor, m.tx, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	s.now = func() time.Time { return testNow }
	return s, m
}

func operator() *authorization.Principal {
	return &authorization.Principal{
		User:        &types.User{ID: "user-1"},
		TenantID:    "tenant-1",
		Role:        types.RoleAdmin,
		Permissions: authorization.RolePermissions(types.RoleAdmin),
	}
}

func echoUpdate(_ context.Context, j *types.PrintJob) (*types.PrintJob, error) {
	updated := *j
	return &updated, nil
}

func TestService_CreatePrintJob(t *testing.T) {
	invoice := &types.Invoice{
		ID:       "inv-1",
		TenantID: "tenant-1",
		Lines:    []*types.InvoiceLine{{ID: "line-1"}},
	}

	testCases := []struct {
		name        string
		req         *PrintJobRequest
		invoice     *types.Invoice
		invoiceErr  error
		expectedErr error
	}{
		{
			name:    "whole invoice",
			req:     &PrintJobRequest{InvoiceID: "inv-1", Type: "INVOICE"},
			invoice: invoice,
		},
		{
			name:    "sticker for a line",
			req:     &PrintJobRequest{InvoiceID: "inv-1", LineID: "line-1", Type: "STICKER"},
			invoice: invoice,
		},
		{
			name:        "line of another invoice",
			req:         &PrintJobRequest{InvoiceID: "inv-1", LineID: "line-9", Type: "STICKER"},
			invoice:     invoice,
			expectedErr: errorx.ErrNotFound,
		},
		{
			name:        "invoice of another tenant",
			req:         &PrintJobRequest{InvoiceID: "inv-2", Type: "INVOICE"},
			invoice:     &types.Invoice{ID: "inv-2", TenantID: "tenant-2"},
			expectedErr: errorx.ErrNotFound,
		},
		{
			name:        "unknown invoice",
			req:         &PrintJobRequest{InvoiceID: "inv-3", Type: "INVOICE"},
			invoiceErr:  storage.ErrNotFound,
			expectedErr: errorx.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermPrintManage).Return(operator(), nil)
			m.storage.EXPECT().GetInvoiceByID(gomock.Any(), tc.req.InvoiceID).Return(tc.invoice, tc.invoiceErr)

			if tc.expectedErr == nil {
				m.storage.EXPECT().NextCounter(gomock.Any(), "tenant-1", "PJ").Return(int64(7), nil)
				m.storage.EXPECT().CreatePrintJob(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, j *types.PrintJob) (*types.PrintJob, error) {
						if j.ReadableID != "PJ-000007" || j.Status != types.PrintQueued || j.LineID != tc.req.LineID {
							t.Errorf("unexpected job %+v", j)
						}
						created := *j
						created.ID = "job-1"
						return &created, nil
					},
				)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			}

			job, err := s.CreatePrintJob(context.Background(), tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if job.ID != "job-1" {
				t.Fatalf("unexpected job %+v", job)
			}
		})
	}
}

func TestService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name        string
		current     *types.PrintJob
		req         *StatusRequest
		check       func(*testing.T, *types.PrintJob)
		action      string
		expectedErr error
	}{
		{
			name:    "start processing",
			current: &types.PrintJob{ID: "job-1", TenantID: "tenant-1", Status: types.PrintQueued},
			req:     &StatusRequest{Status: "PROCESSING"},
			action:  "print_job.status_change",
			check: func(t *testing.T, j *types.PrintJob) {
				if j.Status != types.PrintProcessing || j.CompletedAt != nil {
					t.Errorf("unexpected job %+v", j)
				}
			},
		},
		{
			name:    "printed sets completion",
			current: &types.PrintJob{ID: "job-1", TenantID: "tenant-1", Status: types.PrintPrinting},
			req:     &StatusRequest{Status: "PRINTED"},
			action:  "print_job.status_change",
			check: func(t *testing.T, j *types.PrintJob) {
				if j.CompletedAt == nil || !j.CompletedAt.Equal(testNow) {
					t.Errorf("expected completion at %s, got %v", testNow, j.CompletedAt)
				}
			},
		},
		{
			name:    "failure keeps the reason",
			current: &types.PrintJob{ID: "job-1", TenantID: "tenant-1", Status: types.PrintPrinting},
			req:     &StatusRequest{Status: "FAILED", Error: "paper jam"},
			action:  "print_job.failed",
			check: func(t *testing.T, j *types.PrintJob) {
				if j.Error != "paper jam" {
					t.Errorf("unexpected error text %q", j.Error)
				}
			},
		},
		{
			name: "retry counts an attempt",
			current: &types.PrintJob{
				ID: "job-1", TenantID: "tenant-1", Status: types.PrintFailed, Attempts: 1, Error: "paper jam", CompletedAt: &testNow,
			},
			req:    &StatusRequest{Status: "QUEUED"},
			action: "print_job.retry",
			check: func(t *testing.T, j *types.PrintJob) {
				if j.Attempts != 2 || j.Error != "" || j.CompletedAt != nil {
					t.Errorf("unexpected job %+v", j)
				}
			},
		},
		{
			name:        "skipping a step",
			current:     &types.PrintJob{ID: "job-1", TenantID: "tenant-1", Status: types.PrintQueued},
			req:         &StatusRequest{Status: "PRINTED"},
			expectedErr: errorx.ErrInvalidTransition,
		},
		{
			name:        "printed is terminal",
			current:     &types.PrintJob{ID: "job-1", TenantID: "tenant-1", Status: types.PrintPrinted},
			req:         &StatusRequest{Status: "FAILED"},
			expectedErr: errorx.ErrInvalidTransition,
		},
		{
			name:        "other tenant",
			current:     &types.PrintJob{ID: "job-1", TenantID: "tenant-2", Status: types.PrintQueued},
			req:         &StatusRequest{Status: "PROCESSING"},
			expectedErr: errorx.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermPrintManage).Return(operator(), nil)
			m.storage.EXPECT().GetPrintJobForUpdate(gomock.Any(), "job-1").Return(tc.current, nil)

			if tc.expectedErr == nil {
				m.storage.EXPECT().UpdatePrintJob(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e audit.Entry) error {
						if e.Action != tc.action {
							t.Errorf("expected action %s, got %s", tc.action, e.Action)
						}
						return nil
					},
				)
			}

			job, err := s.UpdateStatus(context.Background(), "job-1", tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tc.check(t, job)
		})
	}
}

func TestService_AttachPDF(t *testing.T) {
	testCases := []struct {
		name        string
		file        *types.StoredFile
		expectedErr error
	}{
		{
			name: "print pdf",
			file: &types.StoredFile{ID: "file-1", TenantID: "tenant-1", Purpose: types.FilePrintPDF},
		},
		{
			name:        "logo is not printable",
			file:        &types.StoredFile{ID: "file-1", TenantID: "tenant-1", Purpose: types.FileLogo},
			expectedErr: errorx.ErrInvalidValue,
		},
		{
			name:        "file of another tenant",
			file:        &types.StoredFile{ID: "file-1", TenantID: "tenant-2", Purpose: types.FilePrintPDF},
			expectedErr: errorx.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.authz.EXPECT().Require(gomock.Any(), authorization.PermPrintManage).Return(operator(), nil)
			m.storage.EXPECT().GetStoredFileByID(gomock.Any(), "file-1", false).Return(tc.file, nil)

			if tc.expectedErr == nil {
				m.storage.EXPECT().GetPrintJobForUpdate(gomock.Any(), "job-1").Return(&types.PrintJob{ID: "job-1", TenantID: "tenant-1", Status: types.PrintProcessing}, nil)
				m.storage.EXPECT().UpdatePrintJob(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
				m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
			}

			job, err := s.AttachPDF(context.Background(), "job-1", "file-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if job.FileID != "file-1" {
				t.Fatalf("expected the file to be attached, got %+v", job)
			}
		})
	}
}

func TestService_MonitorStuck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	old := testNow.Add(-15 * time.Minute)
	cutoff := testNow.Add(-10 * time.Minute)

	m.storage.EXPECT().ListPrintJobsUpdatedBefore(gomock.Any(), []types.PrintJobStatus{types.PrintProcessing, types.PrintPrinting}, cutoff).Return([]*types.PrintJob{
		{ID: "job-1"},
		{ID: "job-2"},
		{ID: "job-3"},
	}, nil)

	// job-1 is stuck, job-2 finished meanwhile, job-3 was touched meanwhile
	m.storage.EXPECT().GetPrintJobForUpdate(gomock.Any(), "job-1").Return(&types.PrintJob{ID: "job-1", TenantID: "tenant-1", ReadableID: "PJ-000001", Status: types.PrintPrinting, UpdatedAt: old}, nil)
	m.storage.EXPECT().GetPrintJobForUpdate(gomock.Any(), "job-2").Return(&types.PrintJob{ID: "job-2", TenantID: "tenant-1", Status: types.PrintPrinted, UpdatedAt: old}, nil)
	m.storage.EXPECT().GetPrintJobForUpdate(gomock.Any(), "job-3").Return(&types.PrintJob{ID: "job-3", TenantID: "tenant-2", Status: types.PrintProcessing, UpdatedAt: testNow}, nil)

	m.storage.EXPECT().UpdatePrintJob(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, j *types.PrintJob) (*types.PrintJob, error) {
			if j.ID != "job-1" || j.Status != types.PrintFailed || j.Error == "" {
				t.Errorf("unexpected update %+v", j)
			}
			return echoUpdate(context.Background(), j)
		},
	)
	m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e audit.Entry) error {
			if e.ActorID != "system" || e.Action != "print_job.failed" {
				t.Errorf("unexpected audit entry %+v", e)
			}
			return nil
		},
	)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n *types.Notification) error {
			if n.TenantID != "tenant-1" || n.Kind != "PRINT_FAILED" || n.EntityID != "job-1" {
				t.Errorf("unexpected notification %+v", n)
			}
			return nil
		},
	)

	n, err := s.MonitorStuck(context.Background(), 10*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 failed job, got %d", n)
	}
}

func TestService_MonitorStuckKeepsGoing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	old := testNow.Add(-time.Hour)

	m.storage.EXPECT().ListPrintJobsUpdatedBefore(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*types.PrintJob{{ID: "job-1"}, {ID: "job-2"}}, nil)
	m.storage.EXPECT().GetPrintJobForUpdate(gomock.Any(), "job-1").Return(nil, errors.New("connection reset"))
	m.storage.EXPECT().GetPrintJobForUpdate(gomock.Any(), "job-2").Return(&types.PrintJob{ID: "job-2", TenantID: "tenant-1", Status: types.PrintProcessing, UpdatedAt: old}, nil)
	m.storage.EXPECT().UpdatePrintJob(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
	m.auditor.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	n, err := s.MonitorStuck(context.Background(), 10*time.Minute)
	if err == nil {
		t.Fatal("expected the first failure to be reported")
	}
	if n != 1 {
		t.Fatalf("expected 1 failed job, got %d", n)
	}
}

func TestService_CleanupOld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	retention := 30 * 24 * time.Hour

	m.storage.EXPECT().ListPrintJobsUpdatedBefore(gomock.Any(), []types.PrintJobStatus{types.PrintPrinted, types.PrintFailed}, testNow.Add(-retention)).Return([]*types.PrintJob{
		{ID: "job-1", FileID: "file-1"},
		{ID: "job-2"},
	}, nil)
	m.storage.EXPECT().DeletePrintJob(gomock.Any(), "job-1").Return(nil)
	m.files.EXPECT().DeleteFile(gomock.Any(), "file-1").Return(nil)
	m.storage.EXPECT().DeletePrintJob(gomock.Any(), "job-2").Return(nil)

	n, err := s.CleanupOld(context.Background(), retention)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted jobs, got %d", n)
	}
}

func TestService_ListPrintJobsPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.authz.EXPECT().Require(gomock.Any(), authorization.PermPrintView).Return(nil, errorx.ErrPermissionDenied)

	_, err := s.ListPrintJobs(context.Background(), types.PrintJobFilter{})
	if !errors.Is(err, errorx.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
}
