package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/academico/internal/app/migrations"
	"github.com/yigit/academico/internal/bootstrap"
	"github.com/yigit/academico/internal/pkg/logger"
	"github.com/yigit/academico/internal/server"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:          "academico",
		Short:        "Servidor REST de gestión académica",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", bootstrap.DefaultConfigPath, "path to the YAML configuration file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	})
	root.AddCommand(migrateCommand())

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.NewServer(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(ctx context.Context, m *migrations.Migrator) error {
					return m.Up(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(ctx context.Context, m *migrations.Migrator) error {
					return m.Down(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), func(ctx context.Context, m *migrations.Migrator) error {
					states, err := m.Status(ctx)
					if err != nil {
						return err
					}
					out := cmd.OutOrStdout()
					for _, s := range states {
						state := "pending"
						if s.Applied {
							state = "applied"
						}
						fmt.Fprintf(out, "%05d  %-8s  %s\n", s.Version, state, s.File)
					}
					return nil
				})
			},
		},
	)
	return cmd
}

func withMigrator(ctx context.Context, fn func(context.Context, *migrations.Migrator) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return err
	}

	pool, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := migrations.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(ctx, m)
}
