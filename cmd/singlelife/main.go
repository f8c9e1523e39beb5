package main

import (
	"flag"

	"github.com/cheonTH/singlelife/internal/app"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	app.Run(*configPath)
}
