package handler

import (
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"transitflow/internal/delivery/http/response"
	"transitflow/internal/domain/entity"
	domainerrors "transitflow/internal/domain/errors"
	"transitflow/internal/domain/service"
	"transitflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TransitHandlerParams holds dependencies for TransitHandler, injected by Fx.
type TransitHandlerParams struct {
	fx.In

	TransitUC     usecase.TransitUsecase
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// TransitHandler holds dependencies for station and route handlers
type TransitHandler struct {
	transitUC     usecase.TransitUsecase
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

// NewTransitHandler is the constructor for TransitHandler
func NewTransitHandler(params TransitHandlerParams) *TransitHandler {
	return &TransitHandler{
		transitUC:     params.TransitUC,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// StationResponse is the wire form of a station, matching the stored layout
type StationResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// RouteResponse represents a single or multi-leg route
type RouteResponse struct {
	From                 string   `json:"from"`
	To                   string   `json:"to"`
	Route                []string `json:"route"`
	EstimatedTimeMinutes float64  `json:"estimated_time_minutes"`
	OriginResolved       bool     `json:"origin_resolved"`
}

// EtaResponse represents a precomputed travel time
type EtaResponse struct {
	From                 string  `json:"from"`
	To                   string  `json:"to"`
	EstimatedTimeMinutes float64 `json:"estimated_time_minutes"`
	Algorithm            string  `json:"algorithm"`
}

// AddStopRequest represents the request body for adding one station
type AddStopRequest struct {
	Name      string   `json:"name" validate:"required"`
	Latitude  *float64 `json:"lat" validate:"required"`
	Longitude *float64 `json:"lon" validate:"required"`
}

// BulkStop is one entry of a bulk add; incomplete entries are skipped, not rejected
type BulkStop struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"lat"`
	Longitude *float64 `json:"lon"`
}

// AddMultipleStopsRequest represents the request body for adding many stations
type AddMultipleStopsRequest struct {
	Stops []*BulkStop `json:"stops" validate:"required"`
}

// AddMultipleStopsResponse reports which stations were added
type AddMultipleStopsResponse struct {
	Added   []StationResponse        `json:"added"`
	Skipped []usecase.SkippedStation `json:"skipped"`
}

// MultiRouteRequest represents an ordered list of waypoints
type MultiRouteRequest struct {
	Stops []string `json:"stops" validate:"required,min=2"`
}

// DiagnosticResponse represents a network build warning
type DiagnosticResponse struct {
	Kind    string `json:"kind"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Message string `json:"message"`
}

// NetworkResponse describes the published network
type NetworkResponse struct {
	Version     int64                `json:"version"`
	Ready       bool                 `json:"ready"`
	Stations    int                  `json:"stations"`
	Edges       int                  `json:"edges"`
	BuiltAt     *time.Time           `json:"built_at,omitempty"`
	Diagnostics []DiagnosticResponse `json:"diagnostics"`
}

// ListStations returns every station of the current network
func (h *TransitHandler) ListStations(c echo.Context) error {
	stations, err := h.transitUC.ListStations(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]StationResponse, 0, len(stations))
	for _, station := range stations {
		result = append(result, toStationResponse(station))
	}

	return response.Success(c, http.StatusOK, result, "Stations retrieved successfully")
}

// StationQRCode returns a PNG QR code linking to routes ending at the station
func (h *TransitHandler) StationQRCode(c echo.Context) error {
	station, err := h.transitUC.GetStation(c.Request().Context(), pathParam(c, "name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrCodeService.GenerateStationQR(station.Name)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// NetworkStatus describes the current snapshot
func (h *TransitHandler) NetworkStatus(c echo.Context) error {
	status, err := h.transitUC.NetworkStatus(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := NetworkResponse{
		Version:     status.Version,
		Ready:       status.Ready,
		Stations:    status.Stations,
		Edges:       status.Edges,
		Diagnostics: make([]DiagnosticResponse, 0, len(status.Diagnostics)),
	}
	if !status.BuiltAt.IsZero() {
		result.BuiltAt = &status.BuiltAt
	}
	for _, d := range status.Diagnostics {
		result.Diagnostics = append(result.Diagnostics, DiagnosticResponse(d))
	}

	return response.Success(c, http.StatusOK, result, "Network status retrieved successfully")
}

// FindRoute handles GET /route?from=&to=&lat=&lon=
func (h *TransitHandler) FindRoute(c echo.Context) error {
	coordinate, err := parseCoordinate(c.QueryParam("lat"), c.QueryParam("lon"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	route, err := h.transitUC.FindRoute(c.Request().Context(), &usecase.FindRouteInput{
		Origin:           c.QueryParam("from"),
		OriginCoordinate: coordinate,
		Destination:      c.QueryParam("to"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRouteResponse(route), "Route found")
}

// PrecomputedEta handles GET /fw_time?from=&to=
func (h *TransitHandler) PrecomputedEta(c echo.Context) error {
	eta, err := h.transitUC.LookupPrecomputedEta(c.Request().Context(), c.QueryParam("from"), c.QueryParam("to"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, EtaResponse{
		From:                 eta.From,
		To:                   eta.To,
		EstimatedTimeMinutes: roundMinutes(eta.EtaMinutes),
		Algorithm:            eta.Algorithm,
	}, "Travel time found")
}

// MultiRoute handles POST /multi-route
func (h *TransitHandler) MultiRoute(c echo.Context) error {
	var req MultiRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid multi-route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	route, err := h.transitUC.StitchMultiLegRoute(c.Request().Context(), req.Stops)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRouteResponse(route), "Route found")
}

// AddStop handles POST /add-stop
func (h *TransitHandler) AddStop(c echo.Context) error {
	var req AddStopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid station input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	station, err := h.transitUC.AddStation(c.Request().Context(), &usecase.StationInput{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toStationResponse(station), "Station added successfully")
}

// AddMultipleStops handles POST /add-multiple-stops
func (h *TransitHandler) AddMultipleStops(c echo.Context) error {
	var req AddMultipleStopsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid stations input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	inputs := make([]*usecase.StationInput, len(req.Stops))
	for i, stop := range req.Stops {
		if stop == nil {
			continue
		}
		inputs[i] = &usecase.StationInput{
			Name:      stop.Name,
			Latitude:  stop.Latitude,
			Longitude: stop.Longitude,
		}
	}

	result, err := h.transitUC.AddStations(c.Request().Context(), inputs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	added := make([]StationResponse, 0, len(result.Added))
	for _, station := range result.Added {
		added = append(added, toStationResponse(station))
	}

	return response.Success(c, http.StatusOK, AddMultipleStopsResponse{
		Added:   added,
		Skipped: result.Skipped,
	}, strconv.Itoa(len(added))+" stations added")
}

// parseCoordinate reads optional lat/lon query values; both or neither must be set
func parseCoordinate(rawLat, rawLon string) (*usecase.Coordinate, error) {
	rawLat = strings.TrimSpace(rawLat)
	rawLon = strings.TrimSpace(rawLon)
	if rawLat == "" && rawLon == "" {
		return nil, nil
	}
	if rawLat == "" || rawLon == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("lat and lon must be given together")
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails("lat is not a number")
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinate.WithDetails("lon is not a number")
	}

	return &usecase.Coordinate{Lat: lat, Lng: lon}, nil
}

func roundMinutes(minutes float64) float64 {
	return math.Round(minutes*100) / 100
}

func toRouteResponse(route *entity.Route) RouteResponse {
	return RouteResponse{
		From:                 route.From,
		To:                   route.To,
		Route:                route.Stations,
		EstimatedTimeMinutes: roundMinutes(route.EtaMinutes),
		OriginResolved:       route.OriginResolved,
	}
}

func toStationResponse(station *entity.Station) StationResponse {
	return StationResponse{
		Name:      station.Name,
		Latitude:  station.Latitude,
		Longitude: station.Longitude,
	}
}

// pathParam returns a decoded path parameter. Echo matches on the escaped path only when the
// request carries one that differs from the default encoding, and leaves those params escaped.
func pathParam(c echo.Context, name string) string {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value
	}

	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}

	return value
}
