package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gillani-market/shoprent/internal/config"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/service"
	"github.com/gillani-market/shoprent/internal/store"
)

// The seeder bootstraps a fresh database: it runs migrations and creates the
// admin account from the APP_SEED_* environment variables. With --destroy it
// wipes every user instead (rents and payments follow via cascade).
func main() {
	var destroy bool

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Seed or wipe the shop-rent database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), destroy)
		},
	}
	root.Flags().BoolVar(&destroy, "destroy", false, "delete all users instead of seeding")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, destroy bool) error {
	log := logger.NewLogger("seeder")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("getting configs: %w", err)
	}

	db, err := store.Connect(ctx, cfg.Storage.DB, true, log)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if destroy {
		if _, err = db.ExecContext(ctx, "DELETE FROM users"); err != nil {
			return fmt.Errorf("deleting users: %w", err)
		}
		log.Info().Msg("all users deleted")
		return nil
	}

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	if cfg.App.Seed.Email == "" {
		log.Warn().Msg("no seed admin configured, nothing to do")
		return nil
	}
	if err = services.AuthService.EnsureSeedAdmin(ctx, cfg.App.Seed); err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}

	log.Info().Str("email", cfg.App.Seed.Email).Msg("seed admin ensured")
	return nil
}
