package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eak1mov/go-tilemap/snapshot"
	"github.com/eak1mov/go-tilemap/snapshot/spec"
	"github.com/eak1mov/go-tilemap/sqlstore"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
)

const (
	formatSnapshot = "snapshot"
	formatSQLite   = "sqlite3"
	formatPostgres = "postgres"
)

// deduceFormat picks the format from the path when none is given. Database
// formats take a DSN as path.
func deduceFormat(format, path string) string {
	if format != "" {
		return format
	}
	switch {
	case strings.HasSuffix(path, ".tilemap"):
		return formatSnapshot
	case strings.HasSuffix(path, ".db"), strings.HasSuffix(path, ".sqlite"):
		return formatSQLite
	case strings.HasPrefix(path, "postgres://"), strings.HasPrefix(path, "postgresql://"):
		return formatPostgres
	}
	return format
}

func isDatabase(format string) bool {
	return format == formatSQLite || format == formatPostgres
}

func readSnapshot(path string, opts ...tilemap.Option) (*tilemap.Map, error) {
	reader, err := snapshot.NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	header := reader.Header()
	records := make([]tile.Record, header.RecordCount)
	bar := progressbar.Default(int64(header.RecordCount), "read")
	err = reader.VisitRecords(func(t tile.Index, r tile.Record) error {
		records[t] = r
		return bar.Add(1)
	})
	bar.Finish()
	if err != nil {
		return nil, err
	}

	opts = append([]tilemap.Option{tilemap.WithFreeformEdges(header.Freeform)}, opts...)
	return tilemap.Load(reader.SizeX(), reader.SizeY(), records, opts...)
}

func readMap(ctx context.Context, format, path, id string) (*tilemap.Map, error) {
	logger := tilemap.WithLogger(slog.Default())
	switch {
	case format == formatSnapshot:
		return readSnapshot(path, logger)
	case isDatabase(format):
		mapID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("invalid map id %q: %w", id, err)
		}
		store, err := sqlstore.Open(ctx, format, path, sqlstore.WithLogger(slog.Default()))
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.Load(ctx, mapID, logger)
	}
	return nil, fmt.Errorf("invalid input format: %q", format)
}

type writeParams struct {
	name        string
	order       spec.Order
	compression spec.Compression
}

// writeMap stores m and returns the id of the stored map, which is empty for snapshots.
func writeMap(ctx context.Context, m *tilemap.Map, format, path string, params writeParams) (string, error) {
	switch {
	case format == formatSnapshot:
		writer, err := snapshot.NewFileWriter(path,
			snapshot.WithOrder(params.order),
			snapshot.WithCompression(params.compression),
			snapshot.WithLogger(slog.Default()))
		if err != nil {
			return "", err
		}
		defer writer.Close()
		return "", writer.WriteMap(m)
	case isDatabase(format):
		store, err := sqlstore.Open(ctx, format, path, sqlstore.WithLogger(slog.Default()))
		if err != nil {
			return "", err
		}
		defer store.Close()
		id, err := store.Save(ctx, params.name, m)
		if err != nil {
			return "", err
		}
		return id.String(), nil
	}
	return "", fmt.Errorf("invalid output format: %q", format)
}
