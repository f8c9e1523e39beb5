package main

import (
	"errors"
	"flag"
	"io/fs"

	"github.com/rs/zerolog/log"

	"github.com/cheonTH/singlelife/internal/config"
	"github.com/cheonTH/singlelife/internal/devserver"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		cfg = config.Default()
	}

	devserver.Run(cfg)
}
