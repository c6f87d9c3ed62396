package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/antput/antput/core/pipeline"
	"github.com/antput/antput/core/storage"
	"github.com/antput/antput/core/storage/gateway"
	"github.com/antput/antput/core/storage/localstore"
	"github.com/antput/antput/core/wallet"
	"github.com/antput/antput/lib/logger"
)

var log, _ = logger.New("antput")

func main() {
	app := &cli.App{
		Name:  "antput",
		Usage: "publish and retrieve content on the storage network",
		Commands: []*cli.Command{
			uploadCmd,
			archiveCmd,
			downloadCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorw("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newPipeline wires the configured backend, wallet and retry policy. A
// .env file in the working directory is honoured before the environment
// is read.
func newPipeline() (*pipeline.Pipeline, func(), error) {
	_ = godotenv.Load()

	cfg, err := pipeline.GetConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	w, err := wallet.NewFromPrivateKey(cfg.Wallet.PrivateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("set up wallet: %w", err)
	}

	log.Infow("startup", "run", uuid.NewString(), "wallet", w.Address())

	var client storage.Client
	cleanup := func() {}

	if cfg.Gateway.URL != "" {
		client = gateway.New(cfg.Gateway.URL)
		log.Infow("using gateway backend", "url", cfg.Gateway.URL)
	} else {
		store, err := localstore.New(cfg.Store.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open local store: %w", err)
		}
		client = store
		cleanup = func() { store.Close() }
		log.Infow("using local store backend", "path", cfg.Store.Path)
	}

	return pipeline.New(client, wallet.PayWith(w), cfg.RetryPolicy()), cleanup, nil
}
