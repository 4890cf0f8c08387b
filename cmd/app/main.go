package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/api"
	"storefront/cmd"
	apihttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	gormDB, err := postgres.Open(configs.DSN())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		logger,
	)
	startWebServer(ctx, app, configs.HTTPPort)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	doc, err := api.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading API document: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apihttp.NewHTTPErrorHandler(app.Logger())
	e.Use(apihttp.RequestLogger(app.Logger()))
	e.Use(middleware.Recover())

	app.CreateServer().RegisterRoutes(e, app.CreateAuthenticator())
	if err = apihttp.RegisterDocs(e, doc); err != nil {
		log.Fatalf("Error registering API docs: %v", err)
	}

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
