package main

import (
	"context"
	"log/slog"
	"os"

	"transitflow/config"
	"transitflow/internal/delivery"
	"transitflow/internal/delivery/http"
	"transitflow/internal/delivery/http/middleware"
	"transitflow/internal/delivery/http/router/handler"
	"transitflow/internal/domain/service"
	logs "transitflow/internal/infra/log"
	"transitflow/internal/infra/persistence"
	"transitflow/internal/infra/pubsub"
	"transitflow/internal/infra/qrcode"
	"transitflow/internal/infra/routing/loader"
	"transitflow/internal/usecase"
	"transitflow/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			initializeNetwork,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewStationRepository,
			newPresetEdgeLoader,
		),
	)
}

// newPresetEdgeLoader reads the curated edges from routing.presetEdgesPath
func newPresetEdgeLoader(cfg *config.Config) impl.PresetEdgeLoader {
	return loader.NewCSVLoader(cfg.Routing.PresetEdgesPath)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTransitService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTransitHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// initializeNetwork builds the first snapshot once the store is reachable.
func initializeNetwork(lc fx.Lifecycle, transitUC usecase.TransitUsecase) {
	lc.Append(fx.Hook{
		OnStart: transitUC.Initialize,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
