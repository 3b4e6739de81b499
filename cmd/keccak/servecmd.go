package main

import (
	"context"
	"time"

	"github.com/Aurorachain/go-keccak/cmd/utils"
	"github.com/Aurorachain/go-keccak/internal/keccakapi"
	"github.com/Aurorachain/go-keccak/log"
	"github.com/Aurorachain/go-keccak/metrics"
	"github.com/Aurorachain/go-keccak/params"
	"gopkg.in/urfave/cli.v1"
)

var (
	serveCommand = cli.Command{
		Action:   utils.MigrateFlags(serve),
		Name:     "serve",
		Usage:    "Run the HTTP digest service",
		Flags:    append(serverFlags, utils.MetricsEnabledFlag),
		Category: "SERVICE COMMANDS",
		Description: `
Serves Keccak digests over HTTP until interrupted:

   GET  /sizes           supported digest sizes
   POST /keccak/:bits    digest of the request body
   GET  /keccak/:bits    digest of the "data" query value ("encoding=hex" to decode it)
   GET  /debug/metrics   collected metrics (with --metrics)`,
	}
)

func serve(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Metrics.Enabled {
		metrics.Enabled = true
	}

	runCtx, cancel := utils.InterruptContext(context.Background())
	defer cancel()

	go metrics.CollectProcessMetrics(params.MetricsRefresh*time.Second, runCtx.Done())

	srv := keccakapi.NewServer(cfg.Server)
	if err = srv.ListenAndServe(runCtx); err != nil {
		return err
	}
	log.Info("HTTP digest service stopped")
	return nil
}
