// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"transitflow/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TransitHandler *handler.TransitHandler
	HealthHandler  *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	transitHandler *handler.TransitHandler
	healthHandler  *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		transitHandler: params.TransitHandler,
		healthHandler:  params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Index)
	e.GET("/health", r.healthHandler.HealthCheck)

	stationGroup := e.Group("/stations")
	{
		stationGroup.GET("", r.transitHandler.ListStations)
		stationGroup.GET("/:name/qrcode", r.transitHandler.StationQRCode)
	}

	e.GET("/network", r.transitHandler.NetworkStatus)

	// Route queries
	e.GET("/route", r.transitHandler.FindRoute)
	e.GET("/fw_time", r.transitHandler.PrecomputedEta)
	e.POST("/multi-route", r.transitHandler.MultiRoute)

	// Station mutations
	e.POST("/add-stop", r.transitHandler.AddStop)
	e.POST("/add-multiple-stops", r.transitHandler.AddMultipleStops)
}
