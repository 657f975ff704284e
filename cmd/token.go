// Copyright 2026 Oleamind
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/oleamind/farm-service/internal/db"
	"github.com/oleamind/farm-service/internal/logging"
	"github.com/oleamind/farm-service/internal/monitoring"
	"github.com/oleamind/farm-service/internal/storage"
	"github.com/oleamind/farm-service/internal/tracing"
	"github.com/oleamind/farm-service/internal/types"
	"github.com/oleamind/farm-service/pkg/authentication"
)

var (
	tokenSecret      string
	tokenPrincipalID int64
	tokenLifetime    time.Duration
	tokenDSN         string
)

// tokenCmd mints a signed credential for local development and testing.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a signed credential for a principal",
	Run: func(cmd *cobra.Command, args []string) {
		if tokenPrincipalID <= 0 {
			log.Fatal("--principal-id must be a positive integer")
		}

		validator := authentication.NewCredentialValidator(
			authentication.Config{Secret: []byte(tokenSecret)},
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor(),
			logging.NewNoopLogger(),
		)

		signed, expiry, err := validator.IssueCredential(tokenPrincipalID, tokenLifetime)
		if err != nil {
			log.Fatalf("Failed to sign credential: %v", err)
		}

		if tokenDSN != "" {
			tracer := tracing.NewNoopTracer()
			monitor := monitoring.NewNoopMonitor()
			logger := logging.NewNoopLogger()

			dbClient, err := db.NewDBClient(db.Config{DSN: tokenDSN, MaxConns: 1, MinConns: 1}, tracer, monitor, logger)
			if err != nil {
				log.Fatalf("Failed to connect to database: %v", err)
			}
			defer dbClient.Close()

			store := storage.NewStorage(dbClient, tracer, monitor, logger)
			_, err = store.CreateSession(context.Background(), &types.Session{
				PrincipalID: tokenPrincipalID,
				Token:       signed,
				ExpiresAt:   expiry,
				UserAgent:   "cli",
			})
			if err != nil {
				log.Fatalf("Failed to record session: %v", err)
			}
		}

		fmt.Println(signed)
		fmt.Printf("Expires: %s\n", expiry.Format(time.RFC3339))
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Signing secret")
	tokenCmd.Flags().Int64Var(&tokenPrincipalID, "principal-id", 0, "Principal ID for the subject claim")
	tokenCmd.Flags().DurationVar(&tokenLifetime, "lifetime", 24*time.Hour, "Credential lifetime")
	tokenCmd.Flags().StringVar(&tokenDSN, "dsn", "", "Optional database DSN, records the credential as a revocable session")

	_ = tokenCmd.MarkFlagRequired("secret")
	_ = tokenCmd.MarkFlagRequired("principal-id")
}
