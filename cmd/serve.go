// Copyright 2026 Oleamind
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
	"github.com/spf13/cobra"

	"github.com/oleamind/farm-service/internal/authorization"
	"github.com/oleamind/farm-service/internal/config"
	"github.com/oleamind/farm-service/internal/db"
	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring/prometheus"
	"github.com/oleamind/farm-service/internal/storage"
	"github.com/oleamind/farm-service/internal/tracing"
	"github.com/oleamind/farm-service/pkg/authentication"
	"github.com/oleamind/farm-service/pkg/farm"
	"github.com/oleamind/farm-service/pkg/principal"
	"github.com/oleamind/farm-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
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
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("farm-service", logger)
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

	var validator authentication.CredentialValidatorInterface
	if specs.AuthenticationEnabled {
		if specs.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when authentication is enabled")
		}

		validator = authentication.NewCredentialValidator(
			authentication.Config{Secret: []byte(specs.JWTSecret)},
			tracer,
			monitor,
			logger,
		)
		logger.Info("Authentication is enabled")
	} else {
		validator = authentication.NewNoopValidator()
		logger.Info("Using noop credential validator")
	}
	authnMiddleware := authentication.NewMiddleware(validator, s, tracer, monitor, logger)

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)
	authzMiddleware := authorization.NewMiddleware(authorizer, s, tracer, monitor, logger)

	farmService := farm.NewService(s, tracer, monitor, logger)
	principalService := principal.NewService(s, tracer, monitor, logger)

	router := web.NewRouter(
		farm.NewAPI(farmService, logger),
		principal.NewAPI(principalService, logger),
		authnMiddleware,
		authzMiddleware,
		dbClient,
		specs.CORSAllowedOrigins,
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

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
