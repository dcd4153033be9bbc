package main

import (
	"context"
	"fmt"

	"offer_agent/internal/adapter/persistence"
	"offer_agent/internal/config"

	"github.com/spf13/cobra"
)

func openRepositories(ctx context.Context) (*persistence.Repositories, error) {
	cfg := config.Load()
	repos, err := persistence.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	return repos, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and indexes for the configured storage driver",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repos, err := openRepositories(ctx)
			if err != nil {
				return err
			}
			defer repos.Close()

			if err := repos.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate: %v", err)
			}
			fmt.Println("Schema is up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample users, properties, offers, payments and subscriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repos, err := openRepositories(ctx)
			if err != nil {
				return err
			}
			defer repos.Close()

			if err := repos.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate: %v", err)
			}
			if reset, _ := cmd.Flags().GetBool("reset"); reset {
				if err := repos.Reset(ctx); err != nil {
					return fmt.Errorf("failed to reset: %v", err)
				}
			}

			summary, err := Seed(ctx, repos)
			if err != nil {
				return fmt.Errorf("failed to seed: %v", err)
			}
			fmt.Printf("%-14s  %5s\n", "Table", "Rows")
			for _, row := range summary {
				fmt.Printf("%-14s  %5d\n", row.Table, row.Rows)
			}
			return nil
		},
	}

	cmd.Flags().Bool("reset", false, "Delete existing rows before seeding")

	return cmd
}

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				return fmt.Errorf("refusing to delete data without --yes")
			}
			ctx := cmd.Context()
			repos, err := openRepositories(ctx)
			if err != nil {
				return err
			}
			defer repos.Close()

			if err := repos.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset: %v", err)
			}
			fmt.Println("All records deleted")
			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "Confirm deletion")

	return cmd
}
