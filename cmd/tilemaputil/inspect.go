package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/eak1mov/go-tilemap/snapshot"
	"github.com/eak1mov/go-tilemap/sqlstore"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/google/subcommands"
)

type inspectCmd struct {
	inputFormat string
	inputPath   string
	inputID     string
}

func (c *inspectCmd) Name() string     { return "inspect" }
func (c *inspectCmd) Synopsis() string { return "print snapshot header, stored maps or kind counts" }
func (c *inspectCmd) Usage() string {
	return "tilemaputil inspect -i <path> [-if <format> | -id <uuid>]\n"
}
func (c *inspectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input path or DSN")
	f.StringVar(&c.inputFormat, "if", "", "Input format (snapshot, sqlite3, postgres)")
	f.StringVar(&c.inputID, "id", "", "Map id, for databases; lists maps when empty")
}

func (c *inspectCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	format := deduceFormat(c.inputFormat, c.inputPath)
	var err error
	switch {
	case format == formatSnapshot:
		err = inspectSnapshot(c.inputPath)
	case isDatabase(format) && c.inputID == "":
		err = listMaps(ctx, format, c.inputPath)
	default:
		var m *tilemap.Map
		if m, err = readMap(ctx, format, c.inputPath, c.inputID); err == nil {
			printKinds(m)
		}
	}
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func inspectSnapshot(path string) error {
	reader, err := snapshot.NewFileReader(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	header := reader.Header()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "size\t%dx%d\n", reader.SizeX(), reader.SizeY())
	fmt.Fprintf(w, "freeform\t%v\n", header.Freeform)
	fmt.Fprintf(w, "order\t%v\n", header.Order)
	fmt.Fprintf(w, "compression\t%v\n", header.Compression)
	fmt.Fprintf(w, "records\t%d\n", header.RecordCount)
	fmt.Fprintf(w, "runs\t%d\n", header.RunCount)
	fmt.Fprintf(w, "body\t%d bytes\n", header.BodyLength)
	if err := w.Flush(); err != nil {
		return err
	}

	m, err := reader.ReadMap()
	if err != nil {
		return err
	}
	printKinds(m)
	return nil
}

func listMaps(ctx context.Context, driver, dsn string) error {
	store, err := sqlstore.Open(ctx, driver, dsn, sqlstore.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.List(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tCREATED")
	for _, info := range infos {
		fmt.Fprintf(w, "%v\t%s\t%dx%d\t%s\n", info.ID, info.Name, info.SizeX, info.SizeY, info.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func printKinds(m *tilemap.Map) {
	counts := make(map[tile.Kind]int)
	owners := make(map[tile.Owner]int)
	for t, r := range m.Records() {
		counts[r.Kind()]++
		if o, ok := m.TileOwner(t); ok && o.IsCompany() {
			owners[o]++
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 1, ' ', 0)
	for _, k := range tile.Kinds() {
		if counts[k] > 0 {
			fmt.Fprintf(w, "%v\t%d\n", k, counts[k])
		}
	}
	for o := range tile.Owner(tile.MaxCompanies) {
		if owners[o] > 0 {
			fmt.Fprintf(w, "%v\t%d\n", o, owners[o])
		}
	}
	w.Flush()
}
