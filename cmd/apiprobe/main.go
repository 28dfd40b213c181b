// Command apiprobe checks that the OctoFit API is reachable: it prints the
// API root payload and the registered users, then exits non-zero on failure.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"example.com/octofit/internal/apiclient"
	"example.com/octofit/internal/config"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	baseURL := flag.String("api", cfg.APIBaseURL, "OctoFit API base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "overall probe timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := apiclient.New(config.ResolveAPIBaseURL(*baseURL, ""), apiclient.WithLogger(log.New(os.Stderr, "[apiclient] ", log.LstdFlags)))
	if err := run(ctx, client, os.Stdout); err != nil {
		log.Fatalf("probe %s: %v", client.BaseURL(), err)
	}
}
