// Package cli implements the command surface. It owns all presentation:
// the store and skill packages never print or log, so every error surfaces
// here as user-facing text.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okian/mastery/internal/adapters/repository"
	"github.com/okian/mastery/internal/app"
	"github.com/okian/mastery/internal/config"
	"github.com/okian/mastery/pkg/logger"
)

var (
	cfg *config.Config
	svc *app.Service
	log logger.Logger

	// loadErr holds a corrupt-data failure from startup. The session
	// continues on an empty collection, but mutating commands refuse to
	// overwrite the damaged file unless --force is given.
	loadErr error
	force   bool
)

var rootCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Track, measure and rank your skills from the command line",
	Long: `Mastery is a single-user skill tracker. Record technical and soft
skills, log practice hours and real-world applications, and view a computed
mastery score per skill plus aggregate statistics.

Data persists to a local JSON file between runs (default mastery.json in the
working directory; override with MASTERY_DATA_FILE).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&force, "force", false,
		"allow saving over a storage file that failed to load")
}

// setup loads configuration, initializes logging, builds the store and
// restores the persisted collection before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	c, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c

	logger.Init()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
	}
	log = logger.Named("cli")

	svc = app.New(
		app.WithRepository(repository.NewFileStore(repository.WithPath(cfg.DataFile))),
		app.WithListLimit(cfg.ListLimit),
	)

	if err := svc.Load(ctx); err != nil {
		if errors.Is(err, repository.ErrCorruptData) {
			// Non-fatal: the session continues empty, the user is told.
			loadErr = err
			fmt.Printf("warning: previous data could not be restored: %v\n", err)
			fmt.Println("continuing with an empty collection")
			return nil
		}
		return fmt.Errorf("load skills: %w", err)
	}
	return nil
}

// saveAll flushes the collection, guarding a file that failed to load.
func saveAll(ctx context.Context) error {
	if loadErr != nil && !force {
		return fmt.Errorf("refusing to overwrite %s after a failed load; re-run with --force to start over", cfg.DataFile)
	}
	if err := svc.Save(ctx); err != nil {
		return fmt.Errorf("save skills: %w", err)
	}
	log.Debug(ctx, "collection saved",
		logger.String("file", cfg.DataFile),
		logger.Int("skills", svc.Count(ctx)),
	)
	return nil
}
