// Package config loads the YAML configuration of the tilemaputil generate command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eak1mov/go-tilemap/snapshot/spec"
	"github.com/eak1mov/go-tilemap/terrain"
	"github.com/eak1mov/go-tilemap/tilemap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Map      MapConfig      `yaml:"map"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Database DatabaseConfig `yaml:"database"`
}

type MapConfig struct {
	SizeX         uint32 `yaml:"size_x"`
	SizeY         uint32 `yaml:"size_y"`
	FreeformEdges bool   `yaml:"freeform_edges"`
}

type TerrainConfig struct {
	Seed       uint64  `yaml:"seed"`
	Peaks      int     `yaml:"peaks"` // 0 scales with map size
	MaxHeight  uint8   `yaml:"max_height"`
	TreeChance float64 `yaml:"tree_chance"`
}

type SnapshotConfig struct {
	Order       string `yaml:"order"`
	Compression string `yaml:"compression"`
}

// DatabaseConfig selects the sqlstore target. An empty driver disables it.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Name   string `yaml:"name"`
}

func Default() *Config {
	params := terrain.DefaultParams()
	return &Config{
		Map: MapConfig{
			SizeX: 256,
			SizeY: 256,
		},
		Terrain: TerrainConfig{
			Seed:       params.Seed,
			Peaks:      params.Peaks,
			MaxHeight:  params.MaxHeight,
			TreeChance: params.TreeChance,
		},
		Snapshot: SnapshotConfig{
			Order:       spec.OrderHilbert.String(),
			Compression: spec.CompressionGzip.String(),
		},
		Database: DatabaseConfig{
			Name: "generated",
		},
	}
}

// Load reads configuration from a YAML file. Missing keys keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := tilemap.CheckSize(c.Map.SizeX, c.Map.SizeY); err != nil {
		return err
	}
	if c.Terrain.Peaks < 0 {
		return fmt.Errorf("invalid terrain peaks: %d", c.Terrain.Peaks)
	}
	if c.Terrain.TreeChance < 0 || c.Terrain.TreeChance > 1 {
		return fmt.Errorf("invalid terrain tree chance: %v", c.Terrain.TreeChance)
	}
	if _, err := spec.ParseOrder(c.Snapshot.Order); err != nil {
		return err
	}
	if _, err := spec.ParseCompression(c.Snapshot.Compression); err != nil {
		return err
	}
	switch c.Database.Driver {
	case "", "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

func (c *Config) TerrainParams() terrain.Params {
	return terrain.Params{
		Seed:       c.Terrain.Seed,
		Peaks:      c.Terrain.Peaks,
		MaxHeight:  c.Terrain.MaxHeight,
		TreeChance: c.Terrain.TreeChance,
	}
}

// Order and Compression must only be called on a validated config.
func (c *Config) Order() spec.Order {
	o, _ := spec.ParseOrder(c.Snapshot.Order)
	return o
}

func (c *Config) Compression() spec.Compression {
	comp, _ := spec.ParseCompression(c.Snapshot.Compression)
	return comp
}
