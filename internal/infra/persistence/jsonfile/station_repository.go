// Package jsonfile stores the station list as an indented JSON array on local disk.
package jsonfile

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"transitflow/internal/domain/entity"
	"transitflow/internal/domain/repository"
	"transitflow/internal/errors"
)

type stationRecord struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// stationRepository implements the repository.StationRepository interface.
type stationRepository struct {
	path   string
	logger *slog.Logger

	mu sync.Mutex
}

// NewStationRepository is the constructor for stationRepository.
// A missing file is treated as an empty station list.
func NewStationRepository(path string, logger *slog.Logger) repository.StationRepository {
	return &stationRepository{
		path:   path,
		logger: logger,
	}
}

func (repo *stationRepository) List(_ context.Context) ([]*entity.Station, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	records, err := repo.read()
	if err != nil {
		return nil, err
	}

	stations := make([]*entity.Station, 0, len(records))
	for _, record := range records {
		stations = append(stations, &entity.Station{
			Name:      record.Name,
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		})
	}

	return stations, nil
}

// Append rewrites the whole file through a temporary file and a rename,
// so a failed write leaves the previous list in place.
func (repo *stationRepository) Append(ctx context.Context, stations []*entity.Station) error {
	if len(stations) == 0 {
		return nil
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	records, err := repo.read()
	if err != nil {
		return err
	}

	stored := make(map[string]struct{}, len(records))
	for _, record := range records {
		stored[record.Name] = struct{}{}
	}

	for _, station := range stations {
		if _, exists := stored[station.Name]; exists {
			return errors.Wrap(repository.ErrStationConflict, station.Name)
		}
		stored[station.Name] = struct{}{}
		records = append(records, stationRecord{
			Name:      station.Name,
			Latitude:  station.Latitude,
			Longitude: station.Longitude,
		})
	}

	if err := repo.write(records); err != nil {
		return err
	}

	repo.logger.DebugContext(ctx, "Stations written",
		slog.String("path", repo.path),
		slog.Int("added", len(stations)),
		slog.Int("total", len(records)),
	)

	return nil
}

func (repo *stationRepository) read() ([]stationRecord, error) {
	data, err := os.ReadFile(repo.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []stationRecord{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", repo.path)
	}

	var records []stationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", repo.path)
	}

	return records, nil
}

func (repo *stationRepository) write(records []stationRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode stations")
	}
	data = append(data, '\n')

	dir := filepath.Dir(repo.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(repo.path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary station file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to write temporary station file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to sync temporary station file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temporary station file")
	}

	if err := os.Rename(tmpName, repo.path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", repo.path)
	}

	return nil
}
