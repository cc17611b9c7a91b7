package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/ikatensei/relayer-backend/internal/coordinator"
	"github.com/ikatensei/relayer-backend/internal/guardian"
	"github.com/ikatensei/relayer-backend/internal/ledger/custody"
	"github.com/ikatensei/relayer-backend/internal/ledger/destination"
	"github.com/ikatensei/relayer-backend/internal/ledger/rpc"
	"github.com/ikatensei/relayer-backend/internal/ledger/source"
	"github.com/ikatensei/relayer-backend/internal/metadata"
	"github.com/ikatensei/relayer-backend/internal/metrics"
	"github.com/ikatensei/relayer-backend/internal/model"
	"github.com/ikatensei/relayer-backend/internal/repository/clickhouse"
	"github.com/ikatensei/relayer-backend/internal/service/ingester"
	"github.com/ikatensei/relayer-backend/internal/service/processor"
	"github.com/ikatensei/relayer-backend/internal/service/signer"
	"github.com/ikatensei/relayer-backend/pkg/batcher"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"RELAYER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`

	SourceRPCURL      string `long:"source-rpc-url" env:"RELAYER_SOURCE_RPC_URL" description:"source ledger RPC URL" default:"http://127.0.0.1:8545"`
	CustodyRPCURL     string `long:"custody-rpc-url" env:"RELAYER_CUSTODY_RPC_URL" description:"custody network RPC URL" default:"http://127.0.0.1:8645"`
	DestinationRPCURL string `long:"destination-rpc-url" env:"RELAYER_DESTINATION_RPC_URL" description:"destination ledger RPC URL" default:"http://127.0.0.1:8745"`
	GuardianURL       string `long:"guardian-url" env:"RELAYER_GUARDIAN_URL" description:"guardian envelope API base URL" default:"http://127.0.0.1:7071"`
	MetadataURL       string `long:"metadata-url" env:"RELAYER_METADATA_URL" description:"token metadata API base URL" default:"http://127.0.0.1:7171"`

	Identity       string `long:"identity" env:"RELAYER_IDENTITY" description:"relayer account used as payer and closure submitter" required:"true"`
	CustodyKeyID   string `long:"custody-key-id" env:"RELAYER_CUSTODY_KEY_ID" description:"threshold key identifier on the custody network" required:"true"`
	EmitterAddress string `long:"emitter-address" env:"RELAYER_EMITTER_ADDRESS" description:"sealing contract emitter address, 32 bytes hex" required:"true"`
	SourceChain    uint16 `long:"source-chain" env:"RELAYER_SOURCE_CHAIN" description:"source chain identifier" default:"1"`

	FetchLimit   int           `long:"fetch-limit" env:"RELAYER_FETCH_LIMIT" description:"max seal events per poll" default:"100"`
	WorkerCount  int           `long:"worker-count" env:"RELAYER_WORKER_COUNT" description:"work item processing pool size" default:"8"`
	PollInterval time.Duration `long:"poll-interval" env:"RELAYER_POLL_INTERVAL" description:"delay between event log polls" default:"5s"`
	IdleInterval time.Duration `long:"idle-interval" env:"RELAYER_IDLE_INTERVAL" description:"delay after an empty poll" default:"30s"`

	PresignDeadline time.Duration `long:"presign-deadline" env:"RELAYER_PRESIGN_DEADLINE" description:"presign round completion bound" default:"2m"`
	SignDeadline    time.Duration `long:"sign-deadline" env:"RELAYER_SIGN_DEADLINE" description:"sign round completion bound" default:"2m"`

	JournalFlushSize     int           `long:"journal-flush-size" env:"RELAYER_JOURNAL_FLUSH_SIZE" description:"buffered journal rows per flush" default:"64"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"RELAYER_JOURNAL_FLUSH_INTERVAL" description:"max delay before a journal flush" default:"2s"`

	RPCTimeout     time.Duration `long:"rpc-timeout" env:"RELAYER_RPC_TIMEOUT" description:"HTTP timeout per ledger RPC round-trip" default:"30s"`
	RPCMaxAttempts uint64        `long:"rpc-max-attempts" env:"RELAYER_RPC_MAX_ATTEMPTS" description:"retry ceiling per ledger RPC call" default:"3"`
	RPCRateLimit   int           `long:"rpc-rate-limit" env:"RELAYER_RPC_RATE_LIMIT" description:"outbound RPC calls per second, 0 for unlimited" default:"0"`

	OpsAddr string `long:"ops-addr" env:"RELAYER_OPS_ADDR" description:"metrics and health HTTP listen address" default:":8080"`
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

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("relayer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	emitter, err := parseEmitterAddress(cfg.EmitterAddress)
	if err != nil {
		return err
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	sourceClient, err := newSourceClient(cfg)
	if err != nil {
		return err
	}
	custodyClient, err := newCustodyClient(cfg)
	if err != nil {
		return err
	}
	destinationClient, err := newDestinationClient(cfg)
	if err != nil {
		return err
	}

	coord, err := coordinator.New(repo, destination.NewChecker(destinationClient), logger)
	if err != nil {
		return fmt.Errorf("init coordinator: %w", err)
	}

	signerSvc, err := signer.New(custodyClient, metrics.NewSigner(), logger, signer.Config{
		PresignDeadline: cfg.PresignDeadline,
		SignDeadline:    cfg.SignDeadline,
	})
	if err != nil {
		return fmt.Errorf("init signer: %w", err)
	}

	processorSvc, err := processor.New(
		leaseSource{coord},
		signerSvc,
		sourceClient,
		destinationClient,
		metrics.NewProcessor(),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init processor: %w", err)
	}

	guardianClient, err := guardian.NewClient(guardian.Config{
		Endpoint: cfg.GuardianURL,
	}, metrics.NewLedgerClient("guardian"))
	if err != nil {
		return fmt.Errorf("init guardian client: %w", err)
	}

	resolver, err := metadata.NewResolver(metadata.Config{
		Endpoint: cfg.MetadataURL,
	}, metrics.NewLedgerClient("metadata"))
	if err != nil {
		return fmt.Errorf("init metadata resolver: %w", err)
	}

	journal := batcher.New[model.StatusRow](
		logger.Named("journal"),
		repo.InsertStatusRows,
		cfg.JournalFlushSize,
		cfg.JournalFlushInterval,
		0,
	)
	journal.Start(ctx)
	defer journal.Stop()

	ingesterSvc, err := ingester.New(
		sourceClient,
		guardianClient,
		resolver,
		repo,
		journal,
		processorSvc,
		metrics.NewIngester(),
		logger,
		ingester.Config{
			SourceChain:    model.ChainID(cfg.SourceChain),
			EmitterAddress: emitter,
			FetchLimit:     cfg.FetchLimit,
			WorkerCount:    cfg.WorkerCount,
			PollInterval:   cfg.PollInterval,
			IdleInterval:   cfg.IdleInterval,
		},
	)
	if err != nil {
		return fmt.Errorf("init ingester: %w", err)
	}

	startOpsServer(ctx, cfg.OpsAddr, logger)

	logger.Info("starting relayer",
		zap.Uint16("sourceChain", cfg.SourceChain),
		zap.String("emitter", cfg.EmitterAddress))
	return ingesterSvc.Run(ctx)
}

func newSourceClient(cfg config) (*source.Client, error) {
	caller, err := rpc.NewCaller(rpc.Config{
		Endpoint:    cfg.SourceRPCURL,
		Timeout:     cfg.RPCTimeout,
		RPS:         cfg.RPCRateLimit,
		MaxAttempts: cfg.RPCMaxAttempts,
	}, metrics.NewLedgerClient("source"))
	if err != nil {
		return nil, fmt.Errorf("init source rpc caller: %w", err)
	}
	client, err := source.NewClient(caller, cfg.Identity)
	if err != nil {
		return nil, fmt.Errorf("init source client: %w", err)
	}
	return client, nil
}

func newCustodyClient(cfg config) (*custody.Client, error) {
	caller, err := rpc.NewCaller(rpc.Config{
		Endpoint:    cfg.CustodyRPCURL,
		Timeout:     cfg.RPCTimeout,
		RPS:         cfg.RPCRateLimit,
		MaxAttempts: cfg.RPCMaxAttempts,
	}, metrics.NewLedgerClient("custody"))
	if err != nil {
		return nil, fmt.Errorf("init custody rpc caller: %w", err)
	}
	client, err := custody.NewClient(caller, cfg.CustodyKeyID)
	if err != nil {
		return nil, fmt.Errorf("init custody client: %w", err)
	}
	return client, nil
}

func newDestinationClient(cfg config) (*destination.Client, error) {
	caller, err := rpc.NewCaller(rpc.Config{
		Endpoint:    cfg.DestinationRPCURL,
		Timeout:     cfg.RPCTimeout,
		RPS:         cfg.RPCRateLimit,
		MaxAttempts: cfg.RPCMaxAttempts,
	}, metrics.NewLedgerClient("destination"))
	if err != nil {
		return nil, fmt.Errorf("init destination rpc caller: %w", err)
	}
	client, err := destination.NewClient(caller, cfg.Identity)
	if err != nil {
		return nil, fmt.Errorf("init destination client: %w", err)
	}
	return client, nil
}

func parseEmitterAddress(raw string) ([32]byte, error) {
	var emitter [32]byte
	decoded, err := hex.DecodeString(raw)
	if err != nil {
		return emitter, fmt.Errorf("decode emitter address: %w", err)
	}
	if len(decoded) != len(emitter) {
		return emitter, fmt.Errorf("emitter address must be %d bytes, got %d", len(emitter), len(decoded))
	}
	copy(emitter[:], decoded)
	return emitter, nil
}

// leaseSource adapts the coordinator's concrete lease to the processor's
// interface. A typed-nil lease must never leak through on error.
type leaseSource struct {
	coord *coordinator.Coordinator
}

func (s leaseSource) Begin(ctx context.Context, hash model.SealHash) (processor.Lease, error) {
	lease, err := s.coord.Begin(ctx, hash)
	if err != nil {
		return nil, err
	}
	return lease, nil
}

func startOpsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the ops http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown ops http server", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("starting ops http server", zap.String("addr", addr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops http server failed", zap.Error(err))
		}
	}()
}
