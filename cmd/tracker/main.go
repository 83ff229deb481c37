package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/permapress/permapress-backend/internal/gateway"
	"github.com/permapress/permapress-backend/internal/ledger"
	"github.com/permapress/permapress-backend/internal/metrics"
	"github.com/permapress/permapress-backend/internal/tracker"
)

type config struct {
	GatewayURL       string        `long:"gateway-url" env:"PERMAPRESS_TRACKER_GATEWAY_URL" description:"storage network gateway URL" default:"https://arweave.net"`
	HTTPTimeout      time.Duration `long:"http-timeout" env:"PERMAPRESS_TRACKER_HTTP_TIMEOUT" description:"HTTP timeout for gateway requests" default:"30s"`
	LedgerDir        string        `long:"ledger-dir" env:"PERMAPRESS_TRACKER_LEDGER_DIR" description:"directory holding the upload ledger" default:"data"`
	Interval         time.Duration `long:"interval" env:"PERMAPRESS_TRACKER_INTERVAL" description:"delay between confirmation sweeps" default:"5m"`
	Workers          int           `long:"workers" env:"PERMAPRESS_TRACKER_WORKERS" description:"concurrent status lookups per sweep" default:"4"`
	RequestsPerSec   int           `long:"requests-per-sec" env:"PERMAPRESS_TRACKER_REQUESTS_PER_SEC" description:"gateway status request rate limit" default:"10"`
	MinConfirmations uint64        `long:"min-confirmations" env:"PERMAPRESS_TRACKER_MIN_CONFIRMATIONS" description:"inclusion depth required for confirmation" default:"1"`
	StaleAfter       time.Duration `long:"stale-after" env:"PERMAPRESS_TRACKER_STALE_AFTER" description:"pending age after which an entry is written off" default:"24h"`
	HTTPAddr         string        `long:"http-addr" env:"PERMAPRESS_TRACKER_HTTP_ADDR" description:"address for the metrics and summary server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("tracker failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	client, err := gateway.New(cfg.GatewayURL, cfg.HTTPTimeout)
	if err != nil {
		return fmt.Errorf("init gateway client: %w", err)
	}
	observed := gateway.NewObserved(client, metrics.NewGateway(gatewayHost(cfg.GatewayURL)))

	store, err := ledger.NewFileStore(cfg.LedgerDir)
	if err != nil {
		return fmt.Errorf("init ledger store: %w", err)
	}
	book, err := ledger.Open(store, logger)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}

	startHTTPServer(ctx, cfg.HTTPAddr, book, logger)

	trk := tracker.New(
		observed,
		book,
		metrics.NewTracker(),
		ratelimit.New(cfg.RequestsPerSec),
		time.Now,
		tracker.Config{
			Workers:          cfg.Workers,
			MinConfirmations: cfg.MinConfirmations,
			StaleAfter:       cfg.StaleAfter,
		},
		logger,
	)

	logger.Info("starting confirmation tracker",
		zap.Duration("interval", cfg.Interval),
		zap.String("gateway", cfg.GatewayURL))
	return trk.Run(ctx, cfg.Interval)
}

func startHTTPServer(ctx context.Context, addr string, book *ledger.Book, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/summary", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(book.Aggregate()); err != nil {
			logger.Error("encode summary failed", zap.Error(err))
		}
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting http server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown failed", zap.Error(err))
		}
	}()
}

func gatewayHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return parsed.Host
}
