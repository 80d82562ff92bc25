// Package sqlstore provides API for keeping tile maps in a SQL database.
//
// Note: User must properly initialize the generic driver for the chosen
// database (e.g. import _ "github.com/mattn/go-sqlite3" or
// import _ "github.com/lib/pq") before using this package.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/eak1mov/go-tilemap/snapshot"
	"github.com/eak1mov/go-tilemap/snapshot/spec"
	"github.com/eak1mov/go-tilemap/tile"
	"github.com/eak1mov/go-tilemap/tilemap"
	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("map not found")
	ErrUnsupportedDriver = errors.New("unsupported driver")
)

type dialect struct {
	blobType      string
	timeType      string
	numberedParam bool
}

var dialects = map[string]dialect{
	"sqlite3":  {blobType: "BLOB", timeType: "TIMESTAMP"},
	"postgres": {blobType: "BYTEA", timeType: "TIMESTAMP WITH TIME ZONE", numberedParam: true},
}

// MapInfo describes a stored map without its records.
type MapInfo struct {
	ID        uuid.UUID
	Name      string
	SizeX     uint32
	SizeY     uint32
	Freeform  bool
	CreatedAt time.Time
}

// Store keeps maps as one row per map plus one row per map line. Each line holds
// the run encoding of its records in x order.
type Store struct {
	db      *sql.DB
	dialect dialect
	logger  *slog.Logger
}

type storeConfig struct {
	Logger *slog.Logger
}

type Option func(*storeConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *storeConfig) { c.Logger = logger }
}

// Open connects to the database and creates the schema when missing.
// Supported drivers are "sqlite3" and "postgres".
//
// The returned Store must be closed after use to release database resources.
func Open(ctx context.Context, driver, dsn string, opts ...Option) (*Store, error) {
	config := storeConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, dialect: d, logger: config.Logger}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema(ctx context.Context) error {
	s.logger.Debug("sqlstore: init schema")
	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS maps (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			size_x INTEGER NOT NULL,
			size_y INTEGER NOT NULL,
			freeform BOOLEAN NOT NULL,
			created_at ` + s.dialect.timeType + ` NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS map_rows (
			map_id TEXT NOT NULL REFERENCES maps(id) ON DELETE CASCADE,
			y INTEGER NOT NULL,
			data ` + s.dialect.blobType + ` NOT NULL,
			PRIMARY KEY (map_id, y)
		)`,
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// rebind rewrites ? placeholders into the numbered form when the dialect needs it.
func (s *Store) rebind(query string) string {
	if !s.dialect.numberedParam {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Save stores a copy of m under a new id.
func (s *Store) Save(ctx context.Context, name string, m *tilemap.Map) (id uuid.UUID, err error) {
	id = uuid.New()
	s.logger.Debug("sqlstore: save", "id", id, "name", name, "sizeX", m.SizeX(), "sizeY", m.SizeY())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		s.rebind("INSERT INTO maps (id, name, size_x, size_y, freeform, created_at) VALUES (?, ?, ?, ?, ?, ?)"),
		id.String(), name, m.SizeX(), m.SizeY(), m.FreeformEdges(), time.Now().UTC())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save map: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, s.rebind("INSERT INTO map_rows (map_id, y, data) VALUES (?, ?, ?)"))
	if err != nil {
		return uuid.Nil, err
	}
	defer stmt.Close()

	for y := range m.SizeY() {
		if _, err = stmt.ExecContext(ctx, id.String(), y, encodeRow(m, y)); err != nil {
			return uuid.Nil, fmt.Errorf("failed to save row %d: %w", y, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func encodeRow(m *tilemap.Map, y uint32) []byte {
	return spec.SerializeRuns(spec.CompactRuns(func(yield func(tile.Record) bool) {
		for x := range m.SizeX() {
			if !yield(*m.Record(m.Tile(x, y))) {
				return
			}
		}
	}))
}

// Info returns the description of the map stored under id.
func (s *Store) Info(ctx context.Context, id uuid.UUID) (MapInfo, error) {
	info := MapInfo{ID: id}
	err := s.db.QueryRowContext(ctx,
		s.rebind("SELECT name, size_x, size_y, freeform, created_at FROM maps WHERE id = ?"),
		id.String(),
	).Scan(&info.Name, &info.SizeX, &info.SizeY, &info.Freeform, &info.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return MapInfo{}, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	if err != nil {
		return MapInfo{}, err
	}
	return info, nil
}

// Load reads the map stored under id.
func (s *Store) Load(ctx context.Context, id uuid.UUID, opts ...tilemap.Option) (*tilemap.Map, error) {
	info, err := s.Info(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tilemap.CheckSize(info.SizeX, info.SizeY); err != nil {
		return nil, err
	}
	s.logger.Debug("sqlstore: load", "id", id, "sizeX", info.SizeX, "sizeY", info.SizeY)

	rows, err := s.db.QueryContext(ctx,
		s.rebind("SELECT y, data FROM map_rows WHERE map_id = ? ORDER BY y"), id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]tile.Record, 0, int(info.SizeX)*int(info.SizeY))
	for rows.Next() {
		var y uint32
		var data []byte
		if err := rows.Scan(&y, &data); err != nil {
			return nil, err
		}
		if want := uint32(len(records)) / info.SizeX; y != want {
			return nil, fmt.Errorf("%w: got row %d, want %d", snapshot.ErrCorrupt, y, want)
		}
		runs, err := spec.DeserializeRuns(data)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		start := len(records)
		for r := range spec.ExpandRuns(runs) {
			if uint32(len(records)-start) == info.SizeX {
				return nil, fmt.Errorf("%w: row %d is longer than %d", snapshot.ErrCorrupt, y, info.SizeX)
			}
			records = append(records, r)
		}
		if got := uint32(len(records) - start); got != info.SizeX {
			return nil, fmt.Errorf("%w: row %d has %d records, want %d", snapshot.ErrCorrupt, y, got, info.SizeX)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	opts = append([]tilemap.Option{tilemap.WithFreeformEdges(info.Freeform)}, opts...)
	return tilemap.Load(info.SizeX, info.SizeY, records, opts...)
}

// List returns all stored maps, oldest first.
func (s *Store) List(ctx context.Context) ([]MapInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, size_x, size_y, freeform, created_at FROM maps ORDER BY created_at, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]MapInfo, 0)
	for rows.Next() {
		var info MapInfo
		var id string
		if err := rows.Scan(&id, &info.Name, &info.SizeX, &info.SizeY, &info.Freeform, &info.CreatedAt); err != nil {
			return nil, err
		}
		if info.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		result = append(result, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the map stored under id.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.rebind("DELETE FROM map_rows WHERE map_id = ?"), id.String()); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, s.rebind("DELETE FROM maps WHERE id = ?"), id.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	s.logger.Debug("sqlstore: delete", "id", id)
	return tx.Commit()
}
