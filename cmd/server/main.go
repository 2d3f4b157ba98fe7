// Package main - Entry point for the vm-pricing API server
package main

import (
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"vm-pricing/api"
	"vm-pricing/clouds/azure"
	"vm-pricing/core/pricing"
	"vm-pricing/internal/config"
	"vm-pricing/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	addr := flag.String("addr", "", "Listen address (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("failed to load config", zap.String("path", *cfgPath), zap.Error(err))
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	listenAddr := cfg.Server.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	client := azure.NewRetailClient(cfg.Pricing)
	lookup := pricing.NewLookup(client)
	apiServer := api.NewServer(version, lookup)

	srv := &http.Server{
		Addr:        listenAddr,
		Handler:     apiServer,
		ReadTimeout: time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
	}

	logging.Info("vm-pricing server listening",
		zap.String("addr", listenAddr),
		zap.String("version", version))

	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("server exited", zap.Error(err))
	}
}
