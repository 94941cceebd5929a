// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package printjobs

import (
	"context"
	"time"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/types"
)

type ServiceInterface interface {
	CreatePrintJob(context.Context, *PrintJobRequest) (*types.PrintJob, error)
	GetPrintJob(context.Context, string) (*types.PrintJob, error)
	ListPrintJobs(context.Context, types.PrintJobFilter) ([]*types.PrintJob, error)
	UpdateStatus(context.Context, string, *StatusRequest) (*types.PrintJob, error)
	AttachPDF(context.Context, string, string) (*types.PrintJob, error)
}

// SweeperInterface is driven by the scheduler, outside any request.
type SweeperInterface interface {
	MonitorStuck(context.Context, time.Duration) (int, error)
	CleanupOld(context.Context, time.Duration) (int, error)
}

type StorageInterface interface {
	NextCounter(ctx context.Context, tenantID, prefix string) (int64, error)
	GetInvoiceByID(ctx context.Context, id string) (*types.Invoice, error)
	GetStoredFileByID(ctx context.Context, id string, withData bool) (*types.StoredFile, error)
	CreatePrintJob(ctx context.Context, j *types.PrintJob) (*types.PrintJob, error)
	GetPrintJobByID(ctx context.Context, id string) (*types.PrintJob, error)
	GetPrintJobForUpdate(ctx context.Context, id string) (*types.PrintJob, error)
	ListPrintJobs(ctx context.Context, tenantID string, filter types.PrintJobFilter) ([]*types.PrintJob, error)
	ListPrintJobsUpdatedBefore(ctx context.Context, statuses []types.PrintJobStatus, before time.Time) ([]*types.PrintJob, error)
	UpdatePrintJob(ctx context.Context, j *types.PrintJob) (*types.PrintJob, error)
	DeletePrintJob(ctx context.Context, id string) error
}

// NotifierInterface delivers system notifications to a tenant.
type NotifierInterface interface {
	Notify(ctx context.Context, n *types.Notification) error
}

// FilesInterface removes stored PDFs of purged jobs.
type FilesInterface interface {
	DeleteFile(ctx context.Context, id string) error
}

type AuthzInterface interface {
	Require(ctx context.Context, perm authorization.Permission) (*authorization.Principal, error)
}

type AuditorInterface interface {
	Record(ctx context.Context, e audit.Entry) error
}

type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
