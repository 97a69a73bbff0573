// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"transitflow/config"
	deliverycontext "transitflow/internal/delivery/context"
	"transitflow/internal/domain/entity"
	domainerrors "transitflow/internal/domain/errors"
	"transitflow/internal/domain/repository"
	"transitflow/internal/domain/service"
	"transitflow/internal/infra/routing/transit"
	"transitflow/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const algorithmFloydWarshall = "Floyd-Warshall"

// PresetEdgeLoader supplies the curated edge list of the network
type PresetEdgeLoader interface {
	LoadPresetEdges() ([]transit.PresetEdge, error)
}

// TransitServiceParams holds dependencies for the transit service, injected by Fx.
type TransitServiceParams struct {
	fx.In

	Config      *config.Config
	StationRepo repository.StationRepository
	EdgeLoader  PresetEdgeLoader
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// transitService implements the TransitUsecase interface.
// Queries read the engine's current snapshot without locking;
// station writes are serialized by mu and end with a snapshot swap.
// stale is set while the store holds stations the snapshot lacks.
type transitService struct {
	stationRepo    repository.StationRepository
	edgeLoader     PresetEdgeLoader
	publisher      service.EventPublisher
	engine         *transit.Engine
	rebuildTimeout time.Duration
	logger         *slog.Logger

	mu          sync.Mutex
	stations    []*entity.Station
	names       map[string]struct{}
	presetEdges []transit.PresetEdge
	unbuilt     []string

	stale atomic.Bool
}

// NewTransitService is the constructor for transitService.
func NewTransitService(params TransitServiceParams) usecase.TransitUsecase {
	engineConfig := transit.DefaultEngineConfig()
	rebuildTimeout := 30 * time.Second
	if routing := params.Config.Routing; routing != nil {
		if routing.WeightDivisor > 0 {
			engineConfig.WeightDivisor = routing.WeightDivisor
		}
		if routing.NeighborCount > 0 {
			engineConfig.NeighborCount = routing.NeighborCount
		}
		if routing.RebuildTimeout > 0 {
			rebuildTimeout = routing.RebuildTimeout
		}
	}

	return &transitService{
		stationRepo:    params.StationRepo,
		edgeLoader:     params.EdgeLoader,
		publisher:      params.Publisher,
		engine:         transit.NewEngine(engineConfig, params.Logger),
		rebuildTimeout: rebuildTimeout,
		logger:         params.Logger,
		names:          make(map[string]struct{}),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *transitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// Initialize loads stations and preset edges and builds the first snapshot.
func (srv *transitService) Initialize(ctx context.Context) error {
	presetEdges, err := srv.edgeLoader.LoadPresetEdges()
	if err != nil {
		return errors.Wrap(err, "failed to load preset edges")
	}

	stored, err := srv.stationRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load stations")
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.presetEdges = presetEdges
	srv.stations = srv.stations[:0]
	clear(srv.names)
	for _, station := range stored {
		if _, exists := srv.names[station.Name]; exists {
			srv.log(ctx).Warn("Skipping duplicate stored station", slog.String("name", station.Name))

			continue
		}
		coord := transit.Coordinate{Lat: station.Latitude, Lng: station.Longitude}
		if err := coord.Validate(); err != nil {
			srv.log(ctx).Warn("Skipping stored station with invalid coordinate",
				slog.String("name", station.Name),
				slog.Any("error", err),
			)

			continue
		}
		srv.names[station.Name] = struct{}{}
		srv.stations = append(srv.stations, station)
	}

	srv.unbuilt = nil
	srv.stale.Store(false)
	if _, err := srv.rebuild(ctx); err != nil {
		return err
	}

	srv.log(ctx).Info("Transit network initialized",
		slog.Int("stations", len(srv.stations)),
		slog.Int("preset_edges", len(presetEdges)),
	)

	return nil
}

// ListStations returns the stations of the current snapshot.
func (srv *transitService) ListStations(ctx context.Context) ([]*entity.Station, error) {
	stations := srv.snapshot(ctx).Stations()

	result := make([]*entity.Station, 0, len(stations))
	for _, station := range stations {
		result = append(result, toEntityStation(station))
	}

	return result, nil
}

// GetStation returns a single station by name.
func (srv *transitService) GetStation(ctx context.Context, name string) (*entity.Station, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("station name is required")
	}

	station, ok := srv.snapshot(ctx).Graph.Station(name)
	if !ok {
		return nil, domainerrors.ErrUnknownStation.WithDetails(name)
	}

	return toEntityStation(station), nil
}

// FindRoute resolves the origin and runs a single-pair shortest path search.
func (srv *transitService) FindRoute(ctx context.Context, input *usecase.FindRouteInput) (*entity.Route, error) {
	snapshot := srv.snapshot(ctx)

	destination := strings.TrimSpace(input.Destination)
	if destination == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("destination is required")
	}
	if !snapshot.Graph.HasStation(destination) {
		return nil, domainerrors.ErrUnknownStation.WithDetails(destination)
	}

	origin := strings.TrimSpace(input.Origin)
	resolved := false
	if origin == "" || strings.EqualFold(origin, usecase.OriginAuto) || !snapshot.Graph.HasStation(origin) {
		if input.OriginCoordinate == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lon are required when origin is not a known station")
		}

		nearest, err := snapshot.Nearest(transit.Coordinate{
			Lat: input.OriginCoordinate.Lat,
			Lng: input.OriginCoordinate.Lng,
		})
		if err != nil {
			return nil, toAppError(err)
		}

		srv.log(ctx).Debug("Resolved origin from coordinate",
			slog.String("requested", origin),
			slog.String("station", nearest.Station.ID),
			slog.Float64("distance_m", nearest.Distance),
		)

		origin = nearest.Station.ID
		resolved = true
	}

	path, weight, err := snapshot.FindPath(origin, destination)
	if err != nil {
		return nil, toAppError(err)
	}

	return &entity.Route{
		From:           origin,
		To:             destination,
		Stations:       path,
		EtaMinutes:     weight,
		OriginResolved: resolved,
	}, nil
}

// LookupPrecomputedEta reads a precomputed shortest path weight.
func (srv *transitService) LookupPrecomputedEta(ctx context.Context, from, to string) (*entity.Eta, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("from and to are required")
	}

	weight, err := srv.snapshot(ctx).Lookup(from, to)
	if err != nil {
		return nil, toAppError(err)
	}

	return &entity.Eta{
		From:       from,
		To:         to,
		EtaMinutes: weight,
		Algorithm:  algorithmFloydWarshall,
	}, nil
}

// StitchMultiLegRoute composes a route through every waypoint.
func (srv *transitService) StitchMultiLegRoute(ctx context.Context, waypoints []string) (*entity.Route, error) {
	if len(waypoints) < 2 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least two stops are required")
	}

	trimmed := make([]string, len(waypoints))
	for i, waypoint := range waypoints {
		trimmed[i] = strings.TrimSpace(waypoint)
		if trimmed[i] == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("stop %d is empty", i+1))
		}
	}

	path, weight, err := srv.snapshot(ctx).Stitch(trimmed)
	if err != nil {
		return nil, toAppError(err)
	}

	return &entity.Route{
		From:       path[0],
		To:         path[len(path)-1],
		Stations:   path,
		EtaMinutes: weight,
	}, nil
}

// AddStation validates, persists and connects one new station.
func (srv *transitService) AddStation(ctx context.Context, input *usecase.StationInput) (*entity.Station, error) {
	station, err := validateStationInput(input)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	completed, err := srv.completeRebuild(ctx)
	if err != nil {
		return nil, err
	}

	if _, exists := srv.names[station.Name]; exists {
		// A retry of an add whose rebuild failed earlier succeeds once the station is routable.
		if slices.Contains(completed, station.Name) {
			return srv.storedStation(station.Name), nil
		}

		return nil, domainerrors.ErrStationExists.WithDetails(station.Name)
	}

	if err := srv.commit(ctx, []*entity.Station{station}); err != nil {
		return nil, err
	}

	return station, nil
}

// AddStations adds every valid, previously unknown station with a single rebuild.
func (srv *transitService) AddStations(ctx context.Context, inputs []*usecase.StationInput) (*usecase.AddStationsResult, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, err := srv.completeRebuild(ctx); err != nil {
		return nil, err
	}

	result := &usecase.AddStationsResult{
		Added:   []*entity.Station{},
		Skipped: []usecase.SkippedStation{},
	}
	batch := make(map[string]struct{}, len(inputs))

	for idx, input := range inputs {
		station, err := validateStationInput(input)
		if err != nil {
			result.Skipped = append(result.Skipped, skipped(idx, input, err))

			continue
		}

		_, stored := srv.names[station.Name]
		_, repeated := batch[station.Name]
		if stored || repeated {
			result.Skipped = append(result.Skipped, usecase.SkippedStation{
				Index:  idx,
				Name:   station.Name,
				Reason: "station already exists",
			})

			continue
		}

		batch[station.Name] = struct{}{}
		result.Added = append(result.Added, station)
	}

	if len(result.Added) == 0 {
		srv.log(ctx).Info("No valid stations to add", slog.Int("skipped", len(result.Skipped)))

		return result, nil
	}

	if err := srv.commit(ctx, result.Added); err != nil {
		return nil, err
	}

	return result, nil
}

// NetworkStatus describes the current snapshot.
func (srv *transitService) NetworkStatus(ctx context.Context) (*entity.NetworkStatus, error) {
	snapshot := srv.snapshot(ctx)

	diagnostics := make([]entity.NetworkDiagnostic, 0, len(snapshot.Diagnostics))
	for _, d := range snapshot.Diagnostics {
		diagnostics = append(diagnostics, entity.NetworkDiagnostic{
			Kind:    string(d.Kind),
			From:    d.From,
			To:      d.To,
			Message: d.Message,
		})
	}

	return &entity.NetworkStatus{
		Version:     snapshot.Version,
		Ready:       srv.engine.IsReady(),
		Stations:    snapshot.Graph.Len(),
		Edges:       snapshot.Graph.EdgeCount(),
		BuiltAt:     snapshot.BuiltAt,
		Diagnostics: diagnostics,
	}, nil
}

// IsReady returns whether a snapshot has been built.
func (srv *transitService) IsReady() bool {
	return srv.engine.IsReady()
}

// NetworkVersion returns the version of the published snapshot without retrying stale rebuilds.
func (srv *transitService) NetworkVersion() int64 {
	return srv.engine.Snapshot().Version
}

// commit appends stations to the store, then rebuilds and announces the network.
// Callers must hold mu. A store failure leaves memory and the snapshot untouched.
func (srv *transitService) commit(ctx context.Context, added []*entity.Station) error {
	names := make([]string, len(added))
	for i, station := range added {
		names[i] = station.Name
	}

	if err := srv.stationRepo.Append(ctx, added); err != nil {
		srv.log(ctx).Error("Failed to persist stations",
			slog.Any("error", err),
			slog.Any("stations", names),
		)

		return domainerrors.ErrPersistenceFailed.WithDetails("not saved: " + strings.Join(names, ", "))
	}

	// The store now holds the stations, so memory must follow even if the rebuild fails.
	srv.stations = append(srv.stations, added...)
	for _, name := range names {
		srv.names[name] = struct{}{}
	}

	snapshot, err := srv.rebuild(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to rebuild transit network", slog.Any("error", err))
		srv.unbuilt = append(srv.unbuilt, names...)
		srv.stale.Store(true)

		return domainerrors.ErrInternal.WithDetails("stations saved but the network was not rebuilt")
	}

	srv.publish(ctx, snapshot, names)

	return nil
}

// snapshot returns the current snapshot, first retrying a failed rebuild if one is pending.
func (srv *transitService) snapshot(ctx context.Context) *transit.Snapshot {
	if srv.stale.Load() {
		srv.mu.Lock()
		_, err := srv.completeRebuild(ctx)
		srv.mu.Unlock()
		if err != nil {
			srv.log(ctx).Warn("Serving stale transit network", slog.Any("error", err))
		}
	}

	return srv.engine.Snapshot()
}

// completeRebuild rebuilds the network for stations that were saved while a rebuild failed.
// It returns the names that became routable. Callers must hold mu.
func (srv *transitService) completeRebuild(ctx context.Context) ([]string, error) {
	if !srv.stale.Load() {
		return nil, nil
	}

	snapshot, err := srv.rebuild(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternal.WithDetails("network rebuild is still failing")
	}

	completed := srv.unbuilt
	srv.unbuilt = nil
	srv.stale.Store(false)

	srv.log(ctx).Info("Transit network caught up with stored stations", slog.Any("stations", completed))
	srv.publish(ctx, snapshot, completed)

	return completed, nil
}

func (srv *transitService) storedStation(name string) *entity.Station {
	for _, station := range srv.stations {
		if station.Name == name {
			return station
		}
	}

	return nil
}

// rebuild builds a snapshot from the in-memory station set. Callers must hold mu.
// It ignores the caller's cancellation and is bounded by rebuildTimeout only.
func (srv *transitService) rebuild(ctx context.Context) (*transit.Snapshot, error) {
	rebuildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.rebuildTimeout)
	defer cancel()

	stations := make([]transit.Station, len(srv.stations))
	for i, station := range srv.stations {
		stations[i] = toTransitStation(station)
	}

	snapshot, err := srv.engine.Rebuild(rebuildCtx, stations, srv.presetEdges)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return snapshot, nil
}

func (srv *transitService) publish(ctx context.Context, snapshot *transit.Snapshot, added []string) {
	event := &service.NetworkChangedEvent{
		RequestID:     deliverycontext.RequestIDFromContext(ctx),
		Version:       snapshot.Version,
		StationCount:  snapshot.Graph.Len(),
		EdgeCount:     snapshot.Graph.EdgeCount(),
		AddedStations: slices.Clone(added),
		BuiltAt:       snapshot.BuiltAt,
	}

	if err := srv.publisher.PublishNetworkChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish network change",
			slog.Int64("version", snapshot.Version),
			slog.Any("error", err),
		)
	}
}

func validateStationInput(input *usecase.StationInput) (*entity.Station, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("station is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Latitude == nil || input.Longitude == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lon are required")
	}

	coord := transit.Coordinate{Lat: *input.Latitude, Lng: *input.Longitude}
	if err := coord.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails(err.Error())
	}

	return &entity.Station{
		Name:      name,
		Latitude:  coord.Lat,
		Longitude: coord.Lng,
	}, nil
}

func skipped(idx int, input *usecase.StationInput, err error) usecase.SkippedStation {
	reason := err.Error()
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		reason = appErr.Details()
	}

	name := ""
	if input != nil {
		name = input.Name
	}

	return usecase.SkippedStation{Index: idx, Name: name, Reason: reason}
}

// toAppError maps core routing errors to their domain errors
func toAppError(err error) error {
	mapping := []struct {
		sentinel error
		appErr   *domainerrors.BaseError
	}{
		{transit.ErrInvalidCoordinate, domainerrors.ErrInvalidCoordinate},
		{transit.ErrUnknownStation, domainerrors.ErrUnknownStation},
		{transit.ErrUnknownPair, domainerrors.ErrUnknownPair},
		{transit.ErrUnreachable, domainerrors.ErrUnreachable},
		{transit.ErrInfiniteDistance, domainerrors.ErrInfiniteDistance},
		{transit.ErrNoStations, domainerrors.ErrNoStations},
		{transit.ErrTooFewWaypoints, domainerrors.ErrValidationFailed},
	}

	for _, m := range mapping {
		if errors.Is(err, m.sentinel) {
			return m.appErr.WithDetails(err.Error())
		}
	}

	return errors.Wrap(domainerrors.ErrInternal, err.Error())
}

func toTransitStation(station *entity.Station) transit.Station {
	return transit.Station{
		ID:       station.Name,
		Location: transit.Coordinate{Lat: station.Latitude, Lng: station.Longitude},
	}
}

func toEntityStation(station transit.Station) *entity.Station {
	return &entity.Station{
		Name:      station.ID,
		Latitude:  station.Location.Lat,
		Longitude: station.Location.Lng,
	}
}
