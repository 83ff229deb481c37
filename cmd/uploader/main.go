package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/permapress/permapress-backend/internal/fault"
	"github.com/permapress/permapress-backend/internal/gateway"
	"github.com/permapress/permapress-backend/internal/ledger"
	"github.com/permapress/permapress-backend/internal/link"
	"github.com/permapress/permapress-backend/internal/metrics"
	"github.com/permapress/permapress-backend/internal/normalizer"
	"github.com/permapress/permapress-backend/internal/pricing"
	"github.com/permapress/permapress-backend/internal/submitter"
	"github.com/permapress/permapress-backend/internal/wallet"
)

type config struct {
	File          string        `long:"file" env:"PERMAPRESS_UPLOAD_FILE" description:"path of the image to upload" required:"true"`
	Wallet        string        `long:"wallet" env:"PERMAPRESS_UPLOAD_WALLET" description:"path of the JWK wallet file" required:"true"`
	GatewayURL    string        `long:"gateway-url" env:"PERMAPRESS_UPLOAD_GATEWAY_URL" description:"storage network gateway URL" default:"https://arweave.net"`
	RateURL       string        `long:"rate-url" env:"PERMAPRESS_UPLOAD_RATE_URL" description:"fiat rate oracle URL, fiat amounts are omitted when unset"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"PERMAPRESS_UPLOAD_HTTP_TIMEOUT" description:"HTTP timeout for gateway requests" default:"30s"`
	Quality       int           `long:"quality" env:"PERMAPRESS_UPLOAD_QUALITY" description:"JPEG encoding quality" default:"90"`
	MaxWidth      int           `long:"max-width" env:"PERMAPRESS_UPLOAD_MAX_WIDTH" description:"maximum output width in pixels" default:"1920"`
	MaxHeight     int           `long:"max-height" env:"PERMAPRESS_UPLOAD_MAX_HEIGHT" description:"maximum output height in pixels" default:"1920"`
	ScratchDir    string        `long:"scratch-dir" env:"PERMAPRESS_UPLOAD_SCRATCH_DIR" description:"directory for processed artifacts, defaults to the system temp dir"`
	LedgerDir     string        `long:"ledger-dir" env:"PERMAPRESS_UPLOAD_LEDGER_DIR" description:"directory holding the upload ledger" default:"data"`
	TagMetadata   bool          `long:"tag-metadata" env:"PERMAPRESS_UPLOAD_TAG_METADATA" description:"attach app name and creation time tags"`
	AppName       string        `long:"app-name" env:"PERMAPRESS_UPLOAD_APP_NAME" description:"App-Name tag value" default:"permapress"`
	MaxRetries    uint64        `long:"max-retries" env:"PERMAPRESS_UPLOAD_MAX_RETRIES" description:"posting retries after the initial attempt" default:"3"`
	InitialDelay  time.Duration `long:"initial-delay" env:"PERMAPRESS_UPLOAD_INITIAL_DELAY" description:"delay before the first posting retry" default:"500ms"`
	BackoffFactor float64       `long:"backoff-factor" env:"PERMAPRESS_UPLOAD_BACKOFF_FACTOR" description:"posting retry delay multiplier" default:"2"`
	Force         bool          `long:"force" env:"PERMAPRESS_UPLOAD_FORCE" description:"submit even when the wallet balance looks insufficient"`
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

	if err := run(ctx, cfg, logger); err != nil {
		if fault.Is(err, fault.KindCancelled) {
			logger.Warn("upload cancelled")
			return
		}
		logger.Fatal("upload failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	cred, err := wallet.Load(cfg.Wallet)
	if err != nil {
		return fmt.Errorf("load wallet: %w", err)
	}

	client, err := gateway.New(cfg.GatewayURL, cfg.HTTPTimeout)
	if err != nil {
		return fmt.Errorf("init gateway client: %w", err)
	}
	observed := gateway.NewObserved(client, metrics.NewGateway(gatewayHost(cfg.GatewayURL)))

	rates, err := rateSource(cfg)
	if err != nil {
		return fmt.Errorf("init rate client: %w", err)
	}
	estimator := pricing.NewEstimator(observed, rates, observed, metrics.NewOracle(), logger)

	scratch := cfg.ScratchDir
	if scratch == "" {
		scratch = os.TempDir()
	}
	norm, err := normalizer.New(scratch, logger)
	if err != nil {
		return fmt.Errorf("init normalizer: %w", err)
	}

	store, err := ledger.NewFileStore(cfg.LedgerDir)
	if err != nil {
		return fmt.Errorf("init ledger store: %w", err)
	}
	book, err := ledger.Open(store, logger)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}

	source, err := os.Stat(cfg.File)
	if err != nil {
		return fault.Errorf(fault.KindInvalidInput, "stat %s: %w", cfg.File, err)
	}

	artifact, err := norm.Normalize(ctx, cfg.File, normalizer.Options{
		Quality:   cfg.Quality,
		MaxWidth:  cfg.MaxWidth,
		MaxHeight: cfg.MaxHeight,
	})
	if err != nil {
		return fmt.Errorf("normalize image: %w", err)
	}
	if artifact.Path != cfg.File {
		defer func() {
			_ = os.Remove(artifact.Path)
		}()
	}
	logger.Info("image normalized",
		zap.Int64("original_bytes", source.Size()),
		zap.Int64("processed_bytes", artifact.Bytes),
		zap.Float64("saved_percent", artifact.ReductionPercent))

	sufficiency, err := estimator.CheckSufficiency(ctx, cred.Address(), artifact.Bytes)
	if err != nil {
		return fmt.Errorf("check balance: %w", err)
	}
	if !sufficiency.Sufficient {
		if !cfg.Force {
			return fault.Errorf(fault.KindInsufficientBalance,
				"balance %s below required %s, use --force to submit anyway",
				sufficiency.Balance, sufficiency.Required)
		}
		logger.Warn("submitting despite insufficient balance",
			zap.String("balance", sufficiency.Balance),
			zap.String("required", sufficiency.Required))
	}

	sub := submitter.New(observed, estimator, cred, book, metrics.NewSubmitter(), submitter.Config{
		MaxRetries:    cfg.MaxRetries,
		InitialDelay:  cfg.InitialDelay,
		BackoffFactor: cfg.BackoffFactor,
		TagMetadata:   cfg.TagMetadata,
		AppName:       cfg.AppName,
	}, logger)

	handle, err := sub.Submit(ctx, submitter.Request{
		Artifact:      *artifact,
		FileName:      filepath.Base(cfg.File),
		OriginalBytes: source.Size(),
		ContentType:   normalizer.CanonicalContentType,
	}, func(message string, percent int) {
		logger.Info("submit progress", zap.String("stage", message), zap.Int("percent", percent))
	})
	if err != nil {
		return err
	}

	logger.Info("submission accepted",
		zap.String("submission_id", handle.ID),
		zap.String("native_cost", handle.Cost.NativeAmount))
	fmt.Println(link.Snippet(handle.LocationURI, filepath.Base(cfg.File)))
	return nil
}

func gatewayHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return parsed.Host
}

// disabledRates is used when no rate oracle is configured; the estimator
// omits fiat amounts on rate errors.
type disabledRates struct{}

func (disabledRates) NativeToFiat(context.Context) (decimal.Decimal, error) {
	return decimal.Decimal{}, errors.New("rate oracle not configured")
}

func rateSource(cfg config) (pricing.RateSource, error) {
	if cfg.RateURL == "" {
		return disabledRates{}, nil
	}
	return pricing.NewRateClient(cfg.RateURL, cfg.HTTPTimeout)
}
