package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc/credentials"

	"github.com/ktp-forked-repos/ibantools/internal/application/usecase"
	"github.com/ktp-forked-repos/ibantools/internal/domain/port"
	"github.com/ktp-forked-repos/ibantools/internal/infrastructure/config"
	"github.com/ktp-forked-repos/ibantools/internal/infrastructure/messaging"
	"github.com/ktp-forked-repos/ibantools/internal/infrastructure/telemetry"
	grpcPresentation "github.com/ktp-forked-repos/ibantools/internal/presentation/grpc"
	"github.com/ktp-forked-repos/ibantools/internal/presentation/rest"
	"github.com/ktp-forked-repos/ibantools/pkg/auth"
	kafkapkg "github.com/ktp-forked-repos/ibantools/pkg/kafka"
	"github.com/ktp-forked-repos/ibantools/pkg/observability"
	"github.com/ktp-forked-repos/ibantools/pkg/tlsutil"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	// Initialize logger.
	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: cfg.Telemetry.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("iband exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("iband stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	logger.Info("starting iband",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	if cfg.Telemetry.TracingEnabled {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Endpoint:    cfg.Telemetry.OTLPEndpoint,
			Insecure:    true,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer shutdown(context.Background())
		}
	}

	// Initialize metrics.
	metrics, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: cfg.Telemetry.ServiceName})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer metrics.Shutdown(context.Background())

	recorder, err := telemetry.NewRecorder(metrics.Meter("github.com/ktp-forked-repos/ibantools"))
	if err != nil {
		return fmt.Errorf("init recorder: %w", err)
	}

	// Initialize the audit event publisher.
	var publisher port.EventPublisher = messaging.NoopPublisher{}
	if cfg.Kafka.Producer().Enabled() {
		producer, err := kafkapkg.NewProducer(cfg.Kafka.Producer())
		if err != nil {
			return fmt.Errorf("init kafka producer: %w", err)
		}
		defer producer.Close()
		publisher = messaging.NewPublisher(producer)
		logger.Info("audit events enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		logger.Info("KAFKA_BROKERS not set, audit events disabled")
	}

	// Authentication.
	verifier, err := newVerifier(cfg.Auth, logger)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	// TLS.
	var grpcCreds credentials.TransportCredentials
	var httpTLS bool
	var certFile, keyFile string
	if cfg.TLS.Enabled() {
		certFile, keyFile, err = serverCertificate(cfg.TLS, logger)
		if err != nil {
			return err
		}
		grpcCreds, err = tlsutil.ServerTLSConfig(certFile, keyFile)
		if err != nil {
			return fmt.Errorf("load TLS credentials: %w", err)
		}
		httpTLS = true
	}

	// Use cases.
	audit := usecase.NewAudit(publisher, recorder, cfg.Kafka.Topic, logger)
	useCases := usecase.NewSet(audit)

	// gRPC server.
	grpcServer := grpcPresentation.NewServer(
		grpcPresentation.NewHandler(useCases, logger),
		logger,
		cfg.GRPCPort,
		grpcPresentation.ServerOptions{
			Verifier:   verifier,
			Creds:      grpcCreds,
			Reflection: cfg.GRPCReflection,
		},
	)

	// HTTP server (API, health checks and metrics).
	healthHandler := rest.NewHealthHandler()
	httpServer := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: rest.NewRouter(rest.RouterConfig{
			API:      rest.NewHandler(useCases, logger),
			Health:   healthHandler,
			Metrics:  metrics.Handler(),
			Verifier: verifier,
			Logger:   logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if httpTLS {
		httpServer.TLSConfig, err = tlsutil.LoadServerConfig(certFile, keyFile)
		if err != nil {
			return fmt.Errorf("load HTTP TLS config: %w", err)
		}
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		errCh <- grpcServer.Start()
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort, "tls", httpTLS)
		var err error
		if httpTLS {
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http serve: %w", err)
		}
	}()

	// Wait for shutdown.
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-errCh:
		logger.Error("server error", "error", runErr)
	}

	// Graceful shutdown.
	healthHandler.SetDraining()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	grpcServer.Stop()
	return runErr
}

// serverCertificate returns the configured key pair, or the dev certificate
// under TLS_DEV_CERT_DIR, generating it on first start.
func serverCertificate(cfg config.TLSConfig, logger *slog.Logger) (string, string, error) {
	if cfg.DevCertDir == "" {
		return cfg.CertFile, cfg.KeyFile, nil
	}
	dev, created, err := tlsutil.EnsureDevCert(cfg.DevCertDir, cfg.DevCertHosts)
	if err != nil {
		return "", "", fmt.Errorf("dev certificate: %w", err)
	}
	if created {
		logger.Warn("generated self-signed dev certificate", "dir", dev.Dir, "hosts", cfg.DevCertHosts, "ca", dev.CAFile())
	} else {
		logger.Info("using existing dev certificate", "dir", dev.Dir)
	}
	return dev.CertFile(), dev.KeyFile(), nil
}

// newVerifier returns nil when no JWT key material is configured.
func newVerifier(cfg config.AuthConfig, logger *slog.Logger) (*auth.Verifier, error) {
	if !cfg.Enabled() {
		logger.Warn("JWT key material not configured, API is unauthenticated")
		return nil, nil
	}
	vc := auth.VerifierConfig{Secret: cfg.Secret, Issuer: cfg.Issuer}
	if cfg.PublicKeyFile != "" {
		pem, err := auth.LoadKeyFromFile(cfg.PublicKeyFile)
		if err != nil {
			return nil, err
		}
		vc.PublicKeyPEM = string(pem)
	}
	return auth.NewVerifier(vc)
}
