// Package cli defines the people command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/people/internal/config"
	"github.com/mmynk/people/internal/service"
	"github.com/mmynk/people/internal/storage/sqlite"
	"github.com/mmynk/people/pkg/logging"
)

// Version is reported by --version.
const Version = "0.1.0"

type options struct {
	dbPath  string
	verbose bool
}

// NewRootCmd builds the command tree. cfg supplies defaults for the global flags.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "people",
		Short:         "Record people's birth dates and zodiac signs",
		Long:          `people stores names, birth dates and zodiac signs in a SQLite file and lists them, either all at once or filtered by zodiac sign.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logging.SetupWithLevel(slog.LevelDebug)
			}
		},
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	root.PersistentFlags().StringVar(&opts.dbPath, "db", cfg.DB, "The database file name")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newAddCmd(opts),
		newDisplayCmd(opts),
		newSelectCmd(opts),
	)

	return root
}

// markRequired marks flags as required. An unknown name is a programming error.
func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("%s: %v", cmd.Name(), err))
		}
	}
}

// withService opens the store, ensures the schema and hands a service to fn.
// The store is closed before returning.
func withService(ctx context.Context, dbPath string, fn func(*service.PeopleService) error) error {
	if dbPath == "" {
		return fmt.Errorf("%w: database path is required", service.ErrInvalidInput)
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	slog.Debug("Storage opened", "database", dbPath)

	svc := service.NewPeopleService(store)
	if err := svc.Init(ctx); err != nil {
		return err
	}

	return fn(svc)
}
