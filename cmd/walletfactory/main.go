// Copyright (C) 2024, Smartwallet Labs. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/smartwallet-labs/walletfactory/config"
	"github.com/smartwallet-labs/walletfactory/consts"
	"github.com/smartwallet-labs/walletfactory/factory"
	"github.com/smartwallet-labs/walletfactory/pebble"
	"github.com/smartwallet-labs/walletfactory/rpc"
	"github.com/smartwallet-labs/walletfactory/server"
	"github.com/smartwallet-labs/walletfactory/state"
	"github.com/smartwallet-labs/walletfactory/wallet"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", consts.Name, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to JSON config")
	flag.Parse()

	var raw []byte
	if *configPath != "" {
		b, err := os.ReadFile(*configPath)
		if err != nil {
			return err
		}
		raw = b
	}
	cfg, err := config.New(raw)
	if err != nil {
		return err
	}

	log := logging.NewLogger(
		consts.Name,
		logging.NewWrappedCore(
			cfg.LogLevel,
			os.Stdout,
			logging.Colors.ConsoleEncoder(),
		))
	defer log.Stop()

	pcfg := pebble.NewDefaultConfig()
	pcfg.Sync = cfg.SyncWrites
	db, dbRegistry, err := pebble.New(cfg.DatabaseDir, pcfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	registry := prometheus.NewRegistry()
	f, err := factory.New(
		log,
		registry,
		state.NewDatabaseStore(db),
		cfg.EntryPoint,
		wallet.NewCountingRuntime(),
	)
	if err != nil {
		return err
	}
	log.Info("factory ready",
		zap.Stringer("factory", f.Address()),
		zap.Stringer("implementation", f.Implementation().ID()),
		zap.Stringer("entryPoint", cfg.EntryPoint),
	)

	listener, err := net.Listen("tcp", net.JoinHostPort(cfg.HTTPHost, fmt.Sprintf("%d", cfg.HTTPPort)))
	if err != nil {
		return err
	}
	srv := server.New(
		log,
		listener,
		server.HTTPConfig{
			ReadTimeout:       30 * time.Second,
			ReadHeaderTimeout: 30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		cfg.AllowedOrigins,
		shutdownTimeout,
	)

	handler, err := server.NewHandler(rpc.NewJSONRPCServer(f), rpc.Name)
	if err != nil {
		return err
	}
	if err := srv.AddRoute(handler, rpc.JSONRPCEndpoint); err != nil {
		return err
	}
	metricsHandler := promhttp.HandlerFor(
		prometheus.Gatherers{registry, dbRegistry},
		promhttp.HandlerOpts{},
	)
	if err := srv.AddRoute(metricsHandler, "/metrics"); err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("shutting down",
			zap.String("signal", sig.String()),
		)
		_ = srv.Shutdown()
	}()

	log.Info("serving",
		zap.String("address", listener.Addr().String()),
	)
	if err := srv.Dispatch(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
