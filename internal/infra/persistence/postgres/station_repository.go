// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"transitflow/internal/domain/entity"
	"transitflow/internal/domain/repository"
	"transitflow/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stationRepository implements the repository.StationRepository interface.
type stationRepository struct {
	db *gorm.DB
}

// NewStationRepository is the constructor for stationRepository.
func NewStationRepository(db *gorm.DB) repository.StationRepository {
	return &stationRepository{
		db: db,
	}
}

// List returns every stored station ordered by insertion position.
func (repo *stationRepository) List(ctx context.Context) ([]*entity.Station, error) {
	var stationModels []*model.StationModel

	if err := repo.db.WithContext(ctx).
		Order("position ASC").
		Find(&stationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stations")
	}

	stations := make([]*entity.Station, 0, len(stationModels))
	for _, stationM := range stationModels {
		stations = append(stations, toStationDomain(stationM))
	}

	return stations, nil
}

// Append stores stations after the current last position in one transaction.
func (repo *stationRepository) Append(ctx context.Context, stations []*entity.Station) error {
	if len(stations) == 0 {
		return nil
	}

	return withTransaction(ctx, repo.db, func(tx *gorm.DB) error {
		// Serialize concurrent appenders so positions stay unique
		if err := tx.Exec("LOCK TABLE stations IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return errors.Wrap(err, "failed to lock stations table")
		}

		var last int64
		if err := tx.Model(&model.StationModel{}).
			Select("COALESCE(MAX(position), 0)").
			Scan(&last).Error; err != nil {
			return errors.Wrap(err, "failed to read last station position")
		}

		stationModels := positionStations(stations, last)
		if err := tx.Create(&stationModels).Error; err != nil {
			return appendError(err)
		}

		return nil
	})
}

// positionStations numbers stations consecutively after the last stored position.
func positionStations(stations []*entity.Station, last int64) []*model.StationModel {
	stationModels := make([]*model.StationModel, len(stations))
	for i, station := range stations {
		stationModels[i] = fromStationDomain(station, last+int64(i)+1)
	}

	return stationModels
}

// appendError maps a failed insert; a name clash becomes ErrStationConflict.
func appendError(err error) error {
	if isUniqueConstraintViolation(err) {
		return errors.Wrap(repository.ErrStationConflict, err.Error())
	}

	return errors.Wrap(err, "failed to append stations")
}

func toStationDomain(stationM *model.StationModel) *entity.Station {
	return &entity.Station{
		Name:      stationM.Name,
		Latitude:  stationM.Latitude,
		Longitude: stationM.Longitude,
	}
}

func fromStationDomain(station *entity.Station, position int64) *model.StationModel {
	return &model.StationModel{
		Name:      station.Name,
		Latitude:  station.Latitude,
		Longitude: station.Longitude,
		Position:  position,
	}
}
