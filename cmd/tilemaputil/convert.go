package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-tilemap/snapshot/spec"
	"github.com/google/subcommands"
)

type convertCmd struct {
	inputFormat  string
	inputPath    string
	inputID      string
	outputFormat string
	outputPath   string
	name         string
	order        string
	compression  string
}

func (c *convertCmd) Name() string     { return "convert" }
func (c *convertCmd) Synopsis() string { return "copy a map between snapshot files and databases" }
func (c *convertCmd) Usage() string {
	return "tilemaputil convert -i <path> -o <path> [-if <format> | -of <format> | -id <uuid>]\n"
}
func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path or DSN")
	f.StringVar(&c.inputFormat, "if", "", "Input format (snapshot, sqlite3, postgres)")
	f.StringVar(&c.inputID, "id", "", "Input map id, for databases")
	f.StringVar(&c.outputPath, "o", "", "Output path or DSN")
	f.StringVar(&c.outputFormat, "of", "", "Output format (snapshot, sqlite3, postgres)")
	f.StringVar(&c.name, "name", "converted", "Output map name, for databases")
	f.StringVar(&c.order, "order", spec.OrderHilbert.String(), "Snapshot order (rowmajor, hilbert)")
	f.StringVar(&c.compression, "compression", spec.CompressionGzip.String(), "Snapshot compression (none, gzip)")
}

func (c *convertCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	order, err := spec.ParseOrder(c.order)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	compression, err := spec.ParseCompression(c.compression)
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}

	m, err := readMap(ctx, deduceFormat(c.inputFormat, c.inputPath), c.inputPath, c.inputID)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	params := writeParams{name: c.name, order: order, compression: compression}
	id, err := writeMap(ctx, m, deduceFormat(c.outputFormat, c.outputPath), c.outputPath, params)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if id != "" {
		fmt.Println(id)
	}
	return subcommands.ExitSuccess
}
