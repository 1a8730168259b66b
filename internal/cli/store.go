package cli

import (
	"context"
	"fmt"

	"github.com/sakif/packlist/internal/config"
	"github.com/sakif/packlist/internal/repository"
	"github.com/sakif/packlist/internal/repository/postgres"
	"github.com/sakif/packlist/internal/repository/sqlite"
)

// openStore connects to the configured driver. Both drivers apply pending
// migrations before returning.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (repository.Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.New(cfg.Path)
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
