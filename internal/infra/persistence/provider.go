// Package persistence selects the station store configured for the process.
package persistence

import (
	"log/slog"

	"transitflow/config"
	"transitflow/internal/domain/repository"
	"transitflow/internal/errors"
	"transitflow/internal/infra/persistence/jsonfile"
	"transitflow/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewStationRepository returns the store named by persistence.driver.
// PostgreSQL is only connected when it is selected.
func NewStationRepository(params Params) (repository.StationRepository, error) {
	switch driver := params.Config.Persistence.Driver; driver {
	case config.PersistenceDriverFile, "":
		params.Logger.Info("Using JSON file station store", slog.String("path", params.Config.Persistence.FilePath))

		return jsonfile.NewStationRepository(params.Config.Persistence.FilePath, params.Logger), nil
	case config.PersistenceDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using PostgreSQL station store")

		return postgres.NewStationRepository(db), nil
	default:
		return nil, errors.Errorf("unknown persistence driver %q", driver)
	}
}
