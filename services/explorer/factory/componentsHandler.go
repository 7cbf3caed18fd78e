package factory

import (
	"context"
	"time"

	"github.com/BquantFinance/world-data-bank/commonGo"
	"github.com/BquantFinance/world-data-bank/services/explorer/api"
	"github.com/BquantFinance/world-data-bank/services/explorer/cache"
	"github.com/BquantFinance/world-data-bank/services/explorer/catalog"
	"github.com/BquantFinance/world-data-bank/services/explorer/client"
	"github.com/BquantFinance/world-data-bank/services/explorer/config"
	"github.com/BquantFinance/world-data-bank/services/explorer/data360"
	"github.com/BquantFinance/world-data-bank/services/explorer/engine"
	"github.com/BquantFinance/world-data-bank/services/explorer/storage"
)

type componentsHandler struct {
	cacher        engine.Cacher
	server        Server
	purgeInterval time.Duration
	cancelFunc    context.CancelFunc
	closeStore    func() error
}

// NewComponentsHandler creates a new components handler wiring the whole
// explorer stack: http client -> data client -> cached engine -> web server
func NewComponentsHandler(
	historyDBPath string,
	serviceKeyApi string,
	cfg config.Config,
) (*componentsHandler, error) {
	catalogHandler := catalog.NewCatalog()

	httpCaller := client.NewHTTPClient(cfg.BaseURL, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)

	dataClient, err := data360.NewDataClient(data360.ArgsDataClient{
		HTTPCaller: httpCaller,
		Decoder:    catalogHandler,
		PageDelay:  time.Duration(cfg.PageDelayMillis) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	cacher := cache.NewTimeCache(time.Duration(cfg.CacheTTLSeconds) * time.Second)

	store, err := storage.NewSQLiteStorage(historyDBPath, cfg.HistoryRetentionSeconds)
	if err != nil {
		return nil, err
	}

	explorerEngine, err := engine.NewExplorerEngine(engine.ArgsExplorerEngine{
		DataClient:   dataClient,
		Cacher:       cacher,
		Catalog:      catalogHandler,
		HistoryStore: store,
		HistoryLimit: cfg.HistoryLimit,
	})
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	serverArgs := api.ArgsWebServer{
		ServiceKeyApi:     serviceKeyApi,
		ListenAddress:     cfg.ListenAddress,
		StaticDir:         cfg.StaticDir,
		DefaultMaxRecords: cfg.DefaultMaxRecords,
		MaxRecordsPerArea: cfg.MaxRecordsPerArea,
		Engine:            explorerEngine,
		GeneralHandler:    api.CORSMiddleware,
	}

	server, err := api.NewServer(serverArgs)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &componentsHandler{
		cacher:        cacher,
		server:        server,
		purgeInterval: time.Duration(cfg.CacheTTLSeconds) * time.Second,
		closeStore:    store.Close,
	}, nil
}

// GetServer returns the server component
func (ch *componentsHandler) GetServer() Server {
	return ch.server
}

// GetCacher returns the cache component
func (ch *componentsHandler) GetCacher() engine.Cacher {
	return ch.cacher
}

// Start starts the inner components and the periodic cache purge
func (ch *componentsHandler) Start() {
	ch.server.Start()

	ctx, cancel := context.WithCancel(context.Background())
	ch.cancelFunc = cancel
	commonGo.CronJobStarter(ctx, func(_ context.Context) {
		ch.cacher.Purge()
	}, ch.purgeInterval)
}

// Close closes the inner components
func (ch *componentsHandler) Close() {
	if ch.cancelFunc != nil {
		ch.cancelFunc()
	}
	_ = ch.server.Close()
	_ = ch.closeStore()
}
