package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/eak1mov/go-tilemap/internal/config"
	"github.com/eak1mov/go-tilemap/terrain"
	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type generateCmd struct {
	configPath string
	outputPath string
	seed       uint64
}

func (c *generateCmd) Name() string     { return "generate" }
func (c *generateCmd) Synopsis() string { return "generate a random map" }
func (c *generateCmd) Usage() string {
	return "tilemaputil generate [-c <config>] [-o <path>] [-seed <n>]\n"
}
func (c *generateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "c", "", "YAML config path")
	f.StringVar(&c.outputPath, "o", "", "Output snapshot path")
	f.Uint64Var(&c.seed, "seed", 0, "Terrain seed, overrides the config")
}

func (c *generateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	if c.seed != 0 {
		cfg.Terrain.Seed = c.seed
	}
	if c.outputPath == "" && cfg.Database.Driver == "" {
		log.Println("no output: set -o or a database in the config")
		return subcommands.ExitUsageError
	}

	bar := progressbar.NewOptions(3, progressbar.OptionSetDescription("terrain"), progressbar.OptionShowCount())

	m := tilemap.New(cfg.Map.SizeX, cfg.Map.SizeY,
		tilemap.WithFreeformEdges(cfg.Map.FreeformEdges),
		tilemap.WithLogger(slog.Default()))
	params := cfg.TerrainParams()
	params.Logger = slog.Default()
	terrain.Generate(m, params)
	bar.Add(1)

	write := writeParams{name: cfg.Database.Name, order: cfg.Order(), compression: cfg.Compression()}

	bar.Describe("snapshot")
	if c.outputPath != "" {
		if _, err := writeMap(ctx, m, formatSnapshot, c.outputPath, write); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	bar.Add(1)

	bar.Describe("database")
	var id string
	if cfg.Database.Driver != "" {
		var err error
		if id, err = writeMap(ctx, m, cfg.Database.Driver, cfg.Database.DSN, write); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	bar.Add(1)
	bar.Finish()
	fmt.Println()

	if id != "" {
		fmt.Println(id)
	}
	return subcommands.ExitSuccess
}
