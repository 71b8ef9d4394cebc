// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/canonical/authorization-service/internal/config"
	"github.com/canonical/authorization-service/internal/db"
	"github.com/canonical/authorization-service/internal/logging"
	"github.com/canonical/authorization-service/internal/monitoring/prometheus"
	"github.com/canonical/authorization-service/internal/secrets"
	"github.com/canonical/authorization-service/internal/session"
	"github.com/canonical/authorization-service/internal/storage"
	"github.com/canonical/authorization-service/internal/tracing"
	"github.com/canonical/authorization-service/pkg/audit"
	"github.com/canonical/authorization-service/pkg/authentication"
	"github.com/canonical/authorization-service/pkg/authorization"
	"github.com/canonical/authorization-service/pkg/tenant"
	"github.com/canonical/authorization-service/pkg/tenantconfig"
	"github.com/canonical/authorization-service/pkg/web"
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
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("authorization-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	redisOpts, err := redis.ParseURL(specs.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to parse redis url: %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	sessionStore := session.NewStore(redisClient, specs.SessionLifetime, tracer, monitor, logger)

	box, err := secrets.NewBox(specs.SecretsKey)
	if err != nil {
		return fmt.Errorf("failed to create secrets box: %v", err)
	}

	recorder := audit.NewRecorder(s, specs.AuditQueueSize, tracer, monitor, logger)

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go audit.NewSweeper(s, specs.AuditOrphanSweepPeriod, tracer, monitor, logger).Start(sweepCtx)

	configService := tenantconfig.NewService(s, dbClient, box, recorder, specs.ConfigCacheTTL, tracer, monitor, logger)
	evaluator := authorization.NewEvaluator(configService, s, tracer, monitor, logger)

	resolver := authentication.NewResolver(sessionStore, s, dbClient, evaluator, recorder, specs.SessionSlidingRefresh, tracer, monitor, logger)
	authenticationService := authentication.NewService(sessionStore, s, dbClient, recorder, tracer, monitor, logger)
	tenantService := tenant.NewService(s, dbClient, recorder, tracer, monitor, logger)

	authnMiddleware := authentication.NewMiddleware(resolver, tracer, monitor, logger)
	authzMiddleware := authorization.NewMiddleware(evaluator, recorder, tracer, monitor, logger)

	router := web.NewRouter(
		dbClient,
		authentication.NewAPI(authenticationService, tracer, monitor, logger),
		authnMiddleware,
		authzMiddleware,
		tenant.NewAPI(tenantService, authzMiddleware, tracer, monitor, logger),
		tenantconfig.NewAPI(configService, authzMiddleware, tracer, monitor, logger),
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	// Drain the audit queue before the process exits; an event accepted by
	// Record must not be lost to shutdown.
	if err := recorder.Shutdown(ctx); err != nil {
		logger.Errorf("audit recorder shutdown: %v", err)
	}

	return serverError
}
