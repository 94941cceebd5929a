// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/canonical/glassworks-service/internal/db"
	httptypes "github.com/canonical/glassworks-service/internal/http/types"
	"github.com/canonical/glassworks-service/internal/i18n"
	"github.com/canonical/glassworks-service/internal/identity"
	"github.com/canonical/glassworks-service/internal/logging"
	"github.com/canonical/glassworks-service/internal/monitoring"
	"github.com/canonical/glassworks-service/internal/ratelimit"
	"github.com/canonical/glassworks-service/internal/tracing"
	"github.com/canonical/glassworks-service/pkg/auditlogs"
	"github.com/canonical/glassworks-service/pkg/authentication"
	"github.com/canonical/glassworks-service/pkg/catalog"
	"github.com/canonical/glassworks-service/pkg/customers"
	"github.com/canonical/glassworks-service/pkg/files"
	"github.com/canonical/glassworks-service/pkg/invoices"
	"github.com/canonical/glassworks-service/pkg/members"
	"github.com/canonical/glassworks-service/pkg/metrics"
	"github.com/canonical/glassworks-service/pkg/notifications"
	"github.com/canonical/glassworks-service/pkg/payments"
	"github.com/canonical/glassworks-service/pkg/printjobs"
	"github.com/canonical/glassworks-service/pkg/status"
	"github.com/canonical/glassworks-service/pkg/tenant"
	"github.com/canonical/glassworks-service/pkg/webhooks"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	DefaultLanguage    string
	RateLimitPerMin    int

	// Verifier switches bearer authentication on, without it the caller
	// subject comes from the trusted identity header.
	Verifier authentication.TokenVerifierInterface
	// Redis shares the rate limit window across replicas when set.
	Redis goredis.UniversalClient
}

func NewRouter(
	cfg RouterConfig,
	svc *Services,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (http.Handler, error) {
	translator, err := i18n.NewTranslator(cfg.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	responder := httptypes.NewResponder(translator, logger)

	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	if cfg.Verifier != nil {
		public := append([]string{webhooks.PathPrefix, metrics.Path}, status.PublicPaths...)
		public = append(public, files.PublicPaths...)
		middlewares = append(
			middlewares,
			authentication.NewMiddleware(cfg.Verifier, responder, tracer, monitor, logger).Authenticate(public...),
		)
	} else {
		logger.Warn("authentication is disabled, trusting the identity header")
		middlewares = append(middlewares, identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware)
	}

	middlewares = append(
		middlewares,
		ratelimit.NewLimiter(cfg.Redis, cfg.RateLimitPerMin, responder, monitor, logger).Middleware,
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	catalog.NewAPI(svc.Catalog, responder, tracer, monitor, logger).RegisterEndpoints(router)
	customers.NewAPI(svc.Customers, responder, tracer, monitor, logger).RegisterEndpoints(router)
	invoices.NewAPI(svc.Invoices, responder, tracer, monitor, logger).RegisterEndpoints(router)
	payments.NewAPI(svc.Payments, responder, tracer, monitor, logger).RegisterEndpoints(router)
	notifications.NewAPI(svc.Notifications, responder, tracer, monitor, logger).RegisterEndpoints(router)
	files.NewAPI(svc.Files, responder, tracer, monitor, logger).RegisterEndpoints(router)
	printjobs.NewAPI(svc.PrintJobs, responder, tracer, monitor, logger).RegisterEndpoints(router)
	auditlogs.NewAPI(svc.AuditLogs, responder, tracer, monitor, logger).RegisterEndpoints(router)
	members.NewAPI(svc.Members, responder, tracer, monitor, logger).RegisterEndpoints(router)
	tenant.NewAPI(svc.Tenants, responder, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(svc.Webhooks, responder, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router), nil
}
