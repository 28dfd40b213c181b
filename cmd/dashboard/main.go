package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"example.com/octofit/internal/apiclient"
	"example.com/octofit/internal/config"
	"example.com/octofit/internal/fakeapi"
	"example.com/octofit/internal/observability"
	"example.com/octofit/internal/pages"
	httptransport "example.com/octofit/internal/transport/http"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := observability.SetupTracing(ctx, observability.TracingConfig{
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: cfg.OTelServiceName,
	})
	if err != nil {
		log.Fatalf("setup tracing: %v", err)
	}

	var demoSrv *http.Server
	if cfg.DemoMode {
		demoSrv = httptransport.NewServer(
			httptransport.DefaultServerConfig(cfg.DemoAPIAddress),
			fakeapi.NewHandler(fakeapi.NewStore()),
		)
		go func() {
			log.Printf("demo OctoFit API listening on %s", cfg.DemoAPIAddress)
			if err := demoSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("demo api error: %v", err)
			}
		}()
	}

	client := apiclient.New(cfg.APIBaseURL, apiclient.WithTimeout(cfg.APITimeout))

	mux := http.NewServeMux()
	pages.NewHandler(client).RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	server := httptransport.NewServer(
		httptransport.DefaultServerConfig(cfg.HTTPAddress),
		httptransport.Instrument(mux, cfg.OTelServiceName, log.Default()),
	)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("octofit dashboard listening on %s (api %s)", cfg.HTTPAddress, cfg.APIBaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	if demoSrv != nil {
		if err := demoSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("demo api shutdown failed: %v", err)
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("tracing shutdown failed: %v", err)
	}
}
