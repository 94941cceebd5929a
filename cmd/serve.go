// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/canonical/glassworks-service/internal/identity"
	"github.com/canonical/glassworks-service/pkg/authentication"
	"github.com/canonical/glassworks-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	specs, logger := a.specs, a.logger

	svc, err := a.services()
	if err != nil {
		return err
	}

	routerConfig := web.RouterConfig{
		CORSAllowedOrigins: specs.CORSAllowedOrigins,
		DefaultLanguage:    specs.DefaultLanguage,
		RateLimitPerMin:    specs.RateLimitPerMin,
	}
	if a.redis != nil {
		routerConfig.Redis = a.redis
	}

	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			ctx,
			authentication.Config{
				Issuer:          specs.OIDCIssuer,
				JWKSURL:         specs.OIDCJWKSURL,
				AllowedSubjects: specs.OIDCAllowedSubjects,
				RequiredScope:   specs.OIDCRequiredScope,
			},
			a.tracer,
			a.monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %w", err)
		}
		routerConfig.Verifier = verifier
		logger.Info("Authentication is enabled")
	}

	router, err := web.NewRouter(routerConfig, svc, a.db, a.tracer, a.monitor, logger)
	if err != nil {
		return err
	}

	// gRPC only carries the health service for the orchestrator
	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%v", specs.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(identity.NewMiddleware(a.tracer, a.monitor, logger).GRPCInterceptor),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	go func() {
		logger.Infof("Starting gRPC server on port %v", specs.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Errorf("gRPC server stopped: %v", err)
		}
	}()

	jobsDone := make(chan struct{})
	if specs.JobsEnabled {
		scheduler := a.scheduler(svc)
		go func() {
			defer close(jobsDone)
			logger.Infof("Starting job scheduler with %v", scheduler.Names())
			if err := scheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Errorf("job scheduler stopped: %v", err)
			}
		}()
	} else {
		close(jobsDone)
	}

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	serverDone := make(chan struct{})

	go func() {
		defer close(serverDone)
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	healthServer.Shutdown()
	grpcServer.GracefulStop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}
	<-serverDone
	<-jobsDone

	return serverError
}
