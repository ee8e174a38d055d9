package main

import (
	"context"
	"log/slog"
	"os"

	"shopfront/config"
	"shopfront/internal/delivery"
	"shopfront/internal/delivery/http"
	httpmiddleware "shopfront/internal/delivery/http/middleware"
	"shopfront/internal/delivery/http/router/handler"
	deliverymiddleware "shopfront/internal/delivery/middleware"
	"shopfront/internal/domain/service"
	"shopfront/internal/infra/auth"
	"shopfront/internal/infra/auth/github"
	"shopfront/internal/infra/auth/google"
	logs "shopfront/internal/infra/log"
	"shopfront/internal/infra/persistence/sqlite"
	"shopfront/internal/infra/qrcode"
	"shopfront/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewUserRepository,
			sqlite.NewSessionRepository,
			sqlite.NewCategoryRepository,
			sqlite.NewProductRepository,
			sqlite.NewVariantRepository,
			sqlite.NewReviewRepository,
			sqlite.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewTokenGenerator,
			newQRCodeService,
			fx.Annotate(
				google.NewOAuthService,
				fx.ResultTags(`group:"oauth"`),
			),
			fx.Annotate(
				github.NewOAuthService,
				fx.ResultTags(`group:"oauth"`),
			),
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher(0)
	}

	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewProductService,
			impl.NewReviewService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewProductHandler,
			handler.NewReviewHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
