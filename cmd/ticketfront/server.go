package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"ticketfront/internal/app/cities"
	"ticketfront/internal/app/events"
	"ticketfront/internal/app/orders"
	"ticketfront/internal/app/profiles"
	"ticketfront/internal/app/wishlist"
	"ticketfront/internal/catalog"
	"ticketfront/internal/clock"
	"ticketfront/internal/config"
	"ticketfront/internal/http/middleware"
	"ticketfront/internal/httpapi"
	"ticketfront/internal/kv"
	"ticketfront/internal/logging"
)

type app struct {
	handler http.Handler
	closers []io.Closer
}

func (a *app) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

func newApp(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*app, error) {
	a := &app{}

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	logger.WithFields(map[string]interface{}{
		"events": len(cat.Events()),
		"cities": len(cat.Cities()),
	}).Info().Msg("catalog loaded")

	store, err := a.openStore(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	clk := clock.NewSystem()
	if !cfg.Catalog.ReferenceDate.IsZero() {
		clk = clock.NewPinnedDay(cfg.Catalog.ReferenceDate, clk)
		logger.Info("today pinned to " + cfg.Catalog.ReferenceDate.Format("2006-01-02"))
	}

	// Base services
	eventSvc := events.New(cat, clk)
	citySvc := cities.New(cat, clk)
	profileSvc := profiles.New(store, clk)
	wishlistSvc := wishlist.New(store, cat)

	// Checkout seeds a profile for first-time buyers
	orderSvc := orders.New(store, cat, clk, profileSvc, cfg.Catalog.FeeRate)

	if cfg.Store.SeedDemoProfile {
		if err := seedDemoProfile(ctx, profileSvc); err != nil {
			a.Close()
			return nil, err
		}
	}

	router := httpapi.New(eventSvc, citySvc, orderSvc, wishlistSvc, profileSvc).Routes()
	useMiddleware(router, logger)

	// CORS wraps the router so preflight requests never reach route matching.
	a.handler = middleware.CORS(cfg.CORS.AllowedOrigins)(router)
	return a, nil
}

// useMiddleware installs the request chain, outermost first. The client id
// has to be on the context before the request log line is written.
func useMiddleware(router *mux.Router, logger *logging.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.ClientID())
	router.Use(middleware.RequestLogging(logger))
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("load bundled catalog: %w", err)
		}
		return cat, nil
	}
	cat, err := catalog.LoadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.Path, err)
	}
	return cat, nil
}

func (a *app) openStore(ctx context.Context, cfg *config.Config, logger *logging.Logger) (kv.Store, error) {
	var store kv.Store

	switch cfg.Store.Backend {
	case config.BackendPostgres:
		db, err := openDatabase(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db)
		if err := ensureKVTable(ctx, db); err != nil {
			return nil, err
		}
		store = kv.NewPostgres(db)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		a.closers = append(a.closers, client)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		store = kv.NewRedis(client, cfg.Redis.KeyPrefix)
	default:
		store = kv.NewMemory()
	}

	logger.Info("using " + cfg.Store.Backend + " store")
	return kv.WithLogging(store, logger), nil
}

// ensureKVTable fails fast when migrations have not been applied.
func ensureKVTable(ctx context.Context, db *sql.DB) error {
	var name sql.NullString
	if err := db.QueryRowContext(ctx, `SELECT to_regclass($1)`, "kv_blobs").Scan(&name); err != nil {
		return fmt.Errorf("check kv_blobs table: %w", err)
	}
	if !name.Valid {
		return fmt.Errorf("kv_blobs table missing: run cmd/migrate up")
	}
	return nil
}
