package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context(), a.cfg.Database)
			if err != nil {
				return fmt.Errorf("migrating: %w", err)
			}
			defer store.Close()

			a.logger.Info("migrations applied", slog.String("driver", a.cfg.Database.Driver))
			return nil
		},
	}
}
