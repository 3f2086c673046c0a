package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/kylycht/cryptocalc/controller/converter"
	_ "github.com/kylycht/cryptocalc/docs"
	"github.com/kylycht/cryptocalc/metrics"
	"github.com/kylycht/cryptocalc/service"
	"github.com/kylycht/cryptocalc/service/alphavantage"
	"github.com/kylycht/cryptocalc/storage"
	"github.com/kylycht/cryptocalc/storage/catalog"
	"github.com/kylycht/cryptocalc/storage/csvfile"
	"github.com/kylycht/cryptocalc/storage/persistence"
	"github.com/kylycht/cryptocalc/view"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

//	@title			Cryptocurrency converter calculator
//	@version		1.0
//	@description	Convert an amount of a cryptocurrency into USD, EUR or GBP

// @host		localhost:3000
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	app := &cli.App{
		Name:  "cryptocalc",
		Usage: "cryptocurrency converter calculator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"CONVERTER_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "verbose logging and stack traces on panics",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("unable to initialize application")
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	cfg, err := LoadConfig(cliCtx.String("config"))
	if err != nil {
		return err
	}

	if cliCtx.Bool("debug") {
		cfg.Debug = true
	}

	setupLogger(cfg.Debug)

	return New(cfg)
}

func setupLogger(debug bool) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func New(cfg Config) error {
	a := Application{cfg: cfg}
	return a.init()
}

type Application struct {
	cfg         Config                    // application configuration
	fiberApp    *fiber.App                // underlying fiber application
	dbConn      *sql.DB                   // persistence connection, nil for csv catalog
	catalog     *catalog.Catalog          // convertible coins
	rateFetcher service.RateFetcher       // exchange rates provider
	metrics     *metrics.ConverterMetrics // prometheus collectors
	stopC       chan os.Signal            // handle interrupt for clean up(close connections, etc)
}

func (a *Application) init() error {
	a.fiberApp = fiber.New(fiber.Config{
		AppName:               "cryptocalc",
		DisableStartupMessage: !a.cfg.Debug,
	})
	a.stopC = make(chan os.Signal, 1)
	signal.Notify(a.stopC, os.Interrupt, syscall.SIGTERM)

	source, err := a.catalogSource()
	if err != nil {
		log.Error().Err(err).Msg("unable to open coin catalog source")
		return err
	}

	coins, err := catalog.Load(context.Background(), source, a.cfg.Catalog.ExpectedSize)
	if err != nil {
		log.Error().Err(err).Msg("unable to load coin catalog")
		a.closeDB()
		return err
	}
	a.catalog = coins

	rateFetcher, err := alphavantage.New(alphavantage.Options{
		BaseURL:           a.cfg.Exchange.BaseURL,
		APIKey:            a.cfg.Exchange.APIKey,
		Timeout:           a.cfg.Exchange.Timeout,
		RequestsPerSecond: a.cfg.Exchange.RequestsPerSecond,
		MaxConcurrent:     a.cfg.Exchange.MaxConcurrent,
		BreakerErrors:     a.cfg.Exchange.BreakerErrors,
		BreakerTimeout:    a.cfg.Exchange.BreakerTimeout,
	})
	if err != nil {
		log.Error().Err(err).Msg("unable to create exchange client")
		a.closeDB()
		return err
	}
	a.rateFetcher = rateFetcher

	v, err := view.New()
	if err != nil {
		log.Error().Err(err).Msg("unable to parse templates")
		a.closeDB()
		return err
	}

	a.metrics = metrics.NewConverterMetrics()
	a.buildRoutes(converter.New(a.catalog, a.rateFetcher, v, a.metrics))

	go a.stop()
	log.Info().Str("port", a.cfg.HTTPPort).Int("coins", a.catalog.Len()).Msg("starting converter http server")

	if err := a.fiberApp.Listen(a.cfg.HTTPPort); err != nil {
		log.Error().Err(err).Msg("unable to start http server")
		a.closeDB()
		return err
	}

	return nil
}

func (a *Application) catalogSource() (storage.Storage, error) {
	if a.cfg.Catalog.Source != CatalogPostgres {
		return csvfile.New(a.cfg.Catalog.Path), nil
	}

	connStr := a.cfg.DB.ConnString()
	log.Debug().Str("host", a.cfg.DB.Host).Str("db", a.cfg.DB.Name).Msg("initialize db connection")

	dbConn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to db: %w", err)
	}
	a.dbConn = dbConn

	if a.cfg.DB.Migrate {
		if err := persistence.Migrate(dbConn); err != nil {
			a.closeDB()
			return nil, err
		}
	}

	return persistence.New(dbConn), nil
}

func (a *Application) buildRoutes(conv *converter.Converter) {
	a.fiberApp.Use(recover.New(recover.Config{EnableStackTrace: a.cfg.Debug}))

	a.fiberApp.Get("/", conv.Index)
	a.fiberApp.Get(converter.OutputPath, conv.Output)
	a.fiberApp.Get("/api/convert", conv.Convert)
	a.fiberApp.Get("/swagger/*", swagger.HandlerDefault)
	a.fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(a.metrics.Registry, promhttp.HandlerOpts{})))
	a.fiberApp.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
}

func (a *Application) stop() {
	<-a.stopC
	log.Info().Msg("shutting down")

	if err := a.fiberApp.Shutdown(); err != nil {
		log.Error().Err(err).Msg("unable to shutdown http server")
	}
	a.closeDB()
}

func (a *Application) closeDB() {
	if a.dbConn == nil {
		return
	}

	if err := a.dbConn.Close(); err != nil {
		log.Error().Err(err).Msg("unable to close db connection")
	}
	a.dbConn = nil
}
