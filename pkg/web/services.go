// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"fmt"

	"github.com/canonical/glassworks-service/internal/audit"
	"github.com/canonical/glassworks-service/internal/authorization"
	"github.com/canonical/glassworks-service/internal/db"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/storage"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/pkg/auditlogs"
	"github.com/canonical/glassworks-service/pkg/catalog"
	"github.com/canonical/glassworks-service/pkg/customers"
	"github.com/canonical/glassworks-service/pkg/files"
	"github.com/canonical/glassworks-service/pkg/invoices"
	"github.com/canonical/glassworks-service/pkg/members"
	"github.com/canonical/glassworks-service/pkg/notifications"
	"github.com/canonical/glassworks-service/pkg/payments"
	"github.com/canonical/glassworks-service/pkg/printjobs"
	"github.com/canonical/glassworks-service/pkg/tenant"
	"github.com/canonical/glassworks-service/pkg/webhooks"
)

// ServicesConfig holds the settings the domain services read at startup.
type ServicesConfig struct {
	FileURLSecret        string
	PublicBaseURL        string
	MaxUploadBytes       int64
	RecoveryLinkLifetime string
}

// Services is the full set of domain services sharing one storage, one
// authorizer and one auditor.
type Services struct {
	Catalog       *catalog.Service
	Customers     *customers.Service
	Invoices      *invoices.Service
	Payments      *payments.Service
	Notifications *notifications.Service
	Files         *files.Service
	PrintJobs     *printjobs.Service
	AuditLogs     *auditlogs.Service
	Members       *members.Service
	Tenants       *tenant.Service
	Webhooks      *webhooks.Service
}

func NewServices(
	cfg ServicesConfig,
	s *storage.Storage,
	dbClient db.DBClientInterface,
	identities members.IdentityProviderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Services, error) {
	signer, err := files.NewSigner(cfg.FileURLSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create file url signer: %w", err)
	}

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)
	auditor := audit.NewAuditor(s, tracer, monitor, logger)

	svc := new(Services)
	svc.Catalog = catalog.NewService(s, authorizer, auditor, dbClient, tracer, monitor, logger)
	svc.Customers = customers.NewService(s, authorizer, auditor, dbClient, tracer, monitor, logger)
	svc.Invoices = invoices.NewService(s, svc.Catalog, authorizer, auditor, dbClient, tracer, monitor, logger)
	svc.Payments = payments.NewService(s, authorizer, auditor, dbClient, tracer, monitor, logger)
	svc.Notifications = notifications.NewService(s, authorizer, auditor, dbClient, tracer, monitor, logger)
	svc.Files = files.NewService(cfg.PublicBaseURL, cfg.MaxUploadBytes, signer, s, authorizer, auditor, dbClient, tracer, monitor, logger)
	svc.PrintJobs = printjobs.NewService(s, svc.Notifications, svc.Files, authorizer, auditor, dbClient, tracer, monitor, logger)
	svc.AuditLogs = auditlogs.NewService(s, authorizer, tracer, monitor, logger)
	svc.Members = members.NewService(s, identities, cfg.RecoveryLinkLifetime, authorizer, auditor, dbClient, tracer, monitor, logger)
	svc.Tenants = tenant.NewService(s, authorizer, auditor, dbClient, tracer, monitor, logger)
	svc.Webhooks = webhooks.NewService(s, tracer, monitor, logger)

	return svc, nil
}
