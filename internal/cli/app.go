// Package cli implements the interactive command loop: the gallery,
// location book, weather and settings flows of the app, driven from a
// terminal instead of screens.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/easel-app/easel/internal/config"
	"github.com/easel-app/easel/internal/geo"
	"github.com/easel-app/easel/internal/kv"
	"github.com/easel-app/easel/internal/logging"
	"github.com/easel-app/easel/internal/models"
	"github.com/easel-app/easel/internal/photos"
	"github.com/easel-app/easel/internal/storage"
	"github.com/easel-app/easel/internal/weather"
)

type App struct {
	config  *config.Config
	store   *storage.Facade
	photos  photos.Store
	weather *weather.Client
	locator *geo.Locator
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	db      *kv.SQLiteStore
}

// NewApp wires the application from its configuration: the sqlite-backed
// key-value store, the photo asset backend, the storage facade and the
// weather client.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	if err := os.MkdirAll(cfg.DataDir, 0o770); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := kv.Open(ctx, cfg.DatabasePath())
	if err != nil {
		return nil, err
	}

	photoStore, err := newPhotoStore(ctx, cfg, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	fallback := models.Coordinates{Latitude: cfg.DefaultLatitude, Longitude: cfg.DefaultLongitude}

	return &App{
		config:  cfg,
		store:   storage.New(db, photoStore, log),
		photos:  photoStore,
		weather: weather.NewClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, cfg.WeatherTimeout, log),
		locator: geo.NewLocator(geo.StaticProvider{Coords: fallback}, db, fallback, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		db:      db,
	}, nil
}

func newPhotoStore(ctx context.Context, cfg *config.Config, log logging.Logger) (photos.Store, error) {
	if cfg.PhotoBackend == "s3" {
		client, err := photos.NewS3Client(ctx, photos.S3Config{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		return photos.NewS3Store(client, cfg.S3Bucket, afero.NewOsFs(), log), nil
	}
	return photos.NewFSStore(afero.NewOsFs(), cfg.PhotoDir(), log)
}

// Run loads the stored collections and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	a.store.Initialize(ctx)

	printlnFn("Welcome to easel (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}
