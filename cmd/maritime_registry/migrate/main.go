package main

// go run cmd/maritime_registry/migrate/main.go up

import (
	"fmt"
	"os"

	"maritime_registry/internal/app/config"
	"maritime_registry/internal/app/ds"
	"maritime_registry/internal/app/dsn"
	"maritime_registry/internal/app/repository"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the registry database schema",
	}
	cmd.AddCommand(upCmd(), seedCmd())
	return cmd
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := openRepository()
			if err != nil {
				return err
			}
			defer rep.Close()

			if err := rep.AutoMigrate(cmd.Context()); err != nil {
				return err
			}
			logrus.Info("Database migration completed")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	admin := ds.UserInput{Role: ds.RoleAdmin}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert baseline ship types, flags and an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if admin.Password == "" {
				admin.Password = os.Getenv("ADMIN_PASSWORD")
			}
			if admin.Password == "" {
				return fmt.Errorf("admin password is required (--password or ADMIN_PASSWORD)")
			}

			rep, err := openRepository()
			if err != nil {
				return err
			}
			defer rep.Close()

			if err := rep.Seed(cmd.Context(), admin); err != nil {
				return err
			}
			logrus.Info("Database seed completed")
			return nil
		},
	}

	cmd.Flags().StringVar(&admin.Username, "username", "admin", "Admin user name")
	cmd.Flags().StringVar(&admin.Email, "email", "admin@registry.local", "Admin email")
	cmd.Flags().StringVar(&admin.Password, "password", "", "Admin password (defaults to ADMIN_PASSWORD)")
	return cmd
}

func openRepository() (*repository.Repository, error) {
	conf, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	conf.SetupLogger()

	dialector, err := dsn.Dialector(dsn.FromEnv())
	if err != nil {
		return nil, err
	}
	return repository.New(dialector, repository.Options{SlowThreshold: conf.DBSlowThreshold})
}

