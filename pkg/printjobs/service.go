// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package printjobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/internal/types"
)

const (
	counterPrefix = "PJ"
	systemActor   = "system"

	notificationKind = "PRINT_FAILED"
)

var (
	_ ServiceInterface = (*Service)(nil)
	_ SweeperInterface = (*Service)(nil)
)

type Service struct {
	storage  StorageInterface
	notifier NotifierInterface
	files    FilesInterface
	authz    AuthzInterface
	auditor  AuditorInterface
	db       TxInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreatePrintJob(ctx context.Context, req *PrintJobRequest) (*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "printjobs.Service.CreatePrintJob")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermPrintManage)
	if err != nil {
		return nil, err
	}

	jobType := types.PrintJobType(req.Type)
	if !jobType.Valid() {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "type"})
	}

	inv, err := s.storage.GetInvoiceByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, inv.TenantID); err != nil {
		return nil, err
	}
	if req.LineID != "" && !hasLine(inv, req.LineID) {
		return nil, errorx.ErrNotFound
	}

	var created *types.PrintJob
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		n, err := s.storage.NextCounter(ctx, inv.TenantID, counterPrefix)
		if err != nil {
			return storage.DomainError(err)
		}

		created, err = s.storage.CreatePrintJob(ctx, &types.PrintJob{
			TenantID:   inv.TenantID,
			ReadableID: storage.FormatCounter(counterPrefix, n),
			InvoiceID:  inv.ID,
			LineID:     req.LineID,
			Type:       jobType,
			Status:     types.PrintQueued,
			CreatedBy:  p.UserID(),
		})
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   created.TenantID,
			ActorID:    p.UserID(),
			Action:     "print_job.create",
			EntityType: "print_job",
			EntityID:   created.ID,
			After:      created,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetPrintJob(ctx context.Context, id string) (*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "printjobs.Service.GetPrintJob")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermPrintView)
	if err != nil {
		return nil, err
	}

	j, err := s.storage.GetPrintJobByID(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, j.TenantID); err != nil {
		return nil, err
	}

	return j, nil
}

func (s *Service) ListPrintJobs(ctx context.Context, filter types.PrintJobFilter) ([]*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "printjobs.Service.ListPrintJobs")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermPrintView)
	if err != nil {
		return nil, err
	}

	jobs, err := s.storage.ListPrintJobs(ctx, p.TenantID, filter)
	if err != nil {
		return nil, storage.DomainError(err)
	}

	return jobs, nil
}

// UpdateStatus moves a job along its lifecycle. Moving a FAILED job back to
// QUEUED counts as a retry.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *StatusRequest) (*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "printjobs.Service.UpdateStatus")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermPrintManage)
	if err != nil {
		return nil, err
	}

	to := types.PrintJobStatus(req.Status)

	var updated *types.PrintJob
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		j, err := s.storage.GetPrintJobForUpdate(ctx, id)
		if err != nil {
			return storage.DomainError(err)
		}
		if err := authorization.VerifyTenantOwnership(p, j.TenantID); err != nil {
			return err
		}

		before := *j
		if err := s.transition(j, to, req.Error); err != nil {
			return err
		}

		updated, err = s.storage.UpdatePrintJob(ctx, j)
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   updated.TenantID,
			ActorID:    p.UserID(),
			Action:     statusAction(to),
			EntityType: "print_job",
			EntityID:   updated.ID,
			Before:     &before,
			After:      updated,
		})
	})
	if err != nil {
		return nil, err
	}

	s.countStatus(to)
	return updated, nil
}

// AttachPDF links a rendered PDF, previously uploaded as PRINT_PDF, to the job.
func (s *Service) AttachPDF(ctx context.Context, id, fileID string) (*types.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "printjobs.Service.AttachPDF")
	defer span.End()

	p, err := s.authz.Require(ctx, authorization.PermPrintManage)
	if err != nil {
		return nil, err
	}

	f, err := s.storage.GetStoredFileByID(ctx, fileID, false)
	if err != nil {
		return nil, storage.DomainError(err)
	}
	if err := authorization.VerifyTenantOwnership(p, f.TenantID); err != nil {
		return nil, err
	}
	if f.Purpose != types.FilePrintPDF {
		return nil, errorx.ErrInvalidValue.WithData(map[string]interface{}{"field": "file_id"})
	}

	var updated *types.PrintJob
	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		j, err := s.storage.GetPrintJobForUpdate(ctx, id)
		if err != nil {
			return storage.DomainError(err)
		}
		if err := authorization.VerifyTenantOwnership(p, j.TenantID); err != nil {
			return err
		}

		before := *j
		j.FileID = f.ID

		updated, err = s.storage.UpdatePrintJob(ctx, j)
		if err != nil {
			return storage.DomainError(err)
		}

		return s.auditor.Record(ctx, audit.Entry{
			TenantID:   updated.TenantID,
			ActorID:    p.UserID(),
			Action:     "print_job.attach_pdf",
			EntityType: "print_job",
			EntityID:   updated.ID,
			Before:     &before,
			After:      updated,
		})
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// MonitorStuck fails jobs left in PROCESSING or PRINTING for longer than
// threshold and notifies their tenant. It returns how many jobs were failed.
func (s *Service) MonitorStuck(ctx context.Context, threshold time.Duration) (int, error) {
	ctx, span := s.tracer.Start(ctx, "printjobs.Service.MonitorStuck")
	defer span.End()

	cutoff := s.now().Add(-threshold)

	stuck, err := s.storage.ListPrintJobsUpdatedBefore(ctx, []types.PrintJobStatus{types.PrintProcessing, types.PrintPrinting}, cutoff)
	if err != nil {
		return 0, storage.DomainError(err)
	}

	var errs []error
	failed := 0
	for _, candidate := range stuck {
		ok, err := s.failStuck(ctx, candidate.ID, cutoff, threshold)
		if err != nil {
			s.logger.Errorf("failed to mark print job %s as stuck: %v", candidate.ID, err)
			errs = append(errs, err)
			continue
		}
		if ok {
			failed++
		}
	}

	if failed > 0 {
		s.logger.Infof("marked %d stuck print jobs as failed", failed)
	}

	return failed, errors.Join(errs...)
}

func (s *Service) failStuck(ctx context.Context, id string, cutoff time.Time, threshold time.Duration) (bool, error) {
	failed := false

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		j, err := s.storage.GetPrintJobForUpdate(ctx, id)
		if err != nil {
			return err
		}
		// it may have moved on since it was listed
		if (j.Status != types.PrintProcessing && j.Status != types.PrintPrinting) || !j.UpdatedAt.Before(cutoff) {
			return nil
		}

		before := *j
		reason := fmt.Sprintf("no progress in %s for %s", j.Status, threshold)
		if err := s.transition(j, types.PrintFailed, reason); err != nil {
			return err
		}

		updated, err := s.storage.UpdatePrintJob(ctx, j)
		if err != nil {
			return err
		}

		err = s.auditor.Record(ctx, audit.Entry{
			TenantID:   updated.TenantID,
			ActorID:    systemActor,
			Action:     statusAction(types.PrintFailed),
			EntityType: "print_job",
			EntityID:   updated.ID,
			Before:     &before,
			After:      updated,
			Metadata:   map[string]string{"reason": "stuck"},
		})
		if err != nil {
			return err
		}

		err = s.notifier.Notify(ctx, &types.Notification{
			TenantID:   updated.TenantID,
			Kind:       notificationKind,
			Title:      fmt.Sprintf("Print job %s failed", updated.ReadableID),
			Body:       reason,
			EntityType: "print_job",
			EntityID:   updated.ID,
		})
		if err != nil {
			return err
		}

		failed = true
		return nil
	})

	if failed && err == nil {
		s.countStatus(types.PrintFailed)
	}

	return failed && err == nil, err
}

// CleanupOld deletes finished jobs older than retention together with their
// stored PDFs. It returns how many jobs were deleted.
func (s *Service) CleanupOld(ctx context.Context, retention time.Duration) (int, error) {
	ctx, span := s.tracer.Start(ctx, "printjobs.Service.CleanupOld")
	defer span.End()

	old, err := s.storage.ListPrintJobsUpdatedBefore(ctx, []types.PrintJobStatus{types.PrintPrinted, types.PrintFailed}, s.now().Add(-retention))
	if err != nil {
		return 0, storage.DomainError(err)
	}

	var errs []error
	deleted := 0
	for _, j := range old {
		err := s.db.WithTx(ctx, func(ctx context.Context) error {
			if err := s.storage.DeletePrintJob(ctx, j.ID); err != nil {
				return err
			}
			if j.FileID == "" {
				return nil
			}
			return s.files.DeleteFile(ctx, j.FileID)
		})
		if err != nil {
			s.logger.Errorf("failed to delete print job %s: %v", j.ID, err)
			errs = append(errs, err)
			continue
		}
		deleted++
	}

	if deleted > 0 {
		s.logger.Infof("deleted %d finished print jobs", deleted)
		if err := s.monitor.IncDomainEvent(map[string]string{"event": "print_job_cleanup", "detail": "deleted"}); err != nil {
			s.logger.Debugf("failed to count print job cleanup: %v", err)
		}
	}

	return deleted, errors.Join(errs...)
}

// transition applies to on j, enforcing the status machine.
func (s *Service) transition(j *types.PrintJob, to types.PrintJobStatus, reason string) error {
	if !CanTransition(j.Status, to) {
		return errorx.ErrInvalidTransition.WithData(map[string]interface{}{"from": string(j.Status), "to": string(to)})
	}

	now := s.now().UTC()

	switch to {
	case types.PrintQueued:
		j.Attempts++
		j.Error = ""
		j.CompletedAt = nil
	case types.PrintFailed:
		j.Error = reason
		j.CompletedAt = &now
	case types.PrintPrinted:
		j.Error = ""
		j.CompletedAt = &now
	}

	j.Status = to
	return nil
}

func (s *Service) countStatus(to types.PrintJobStatus) {
	if err := s.monitor.IncDomainEvent(map[string]string{"event": "print_job", "detail": string(to)}); err != nil {
		s.logger.Debugf("failed to count print job transition: %v", err)
	}
}

func statusAction(to types.PrintJobStatus) string {
	switch to {
	case types.PrintFailed:
		return "print_job.failed"
	case types.PrintQueued:
		return "print_job.retry"
	}
	return "print_job.status_change"
}

func hasLine(inv *types.Invoice, lineID string) bool {
	for _, l := range inv.Lines {
		if l.ID == lineID {
			return true
		}
	}
	return false
}

func NewService(
	storage StorageInterface,
	notifier NotifierInterface,
	files FilesInterface,
	authz AuthzInterface,
	auditor AuditorInterface,
	db TxInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
		files:    files,
		authz:    authz,
		auditor:  auditor,
		db:       db,
		now:      time.Now,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
