// Package sqlite provides the SQLite-backed game store. Boards are stored
// as the canonical text seed compressed with zstd, alongside the raw
// generation and delta counters.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"

	"github.com/louisbranch/life.space/internal/life"
	sqlitemigrate "github.com/louisbranch/life.space/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/life.space/internal/services/game/storage"
	"github.com/louisbranch/life.space/internal/services/game/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists game boards in SQLite.
type Store struct {
	sqlDB   *sql.DB
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// Open opens a SQLite game store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("new zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		_ = sqlDB.Close()
		return nil, fmt.Errorf("new zstd decoder: %w", err)
	}

	return &Store{sqlDB: sqlDB, encoder: encoder, decoder: decoder}, nil
}

// Close releases the SQLite handle and compression state.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	s.encoder.Close()
	s.decoder.Close()
	return s.sqlDB.Close()
}

// CreateGame inserts one game record; the name must be unused.
func (s *Store) CreateGame(ctx context.Context, name string, game storage.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("game name is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO games (name, board, generation, delta) VALUES (?, ?, ?, ?)`,
		name,
		s.compressGrid(game.Grid),
		game.Generation,
		game.Delta,
	)
	if err != nil {
		if isGameUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

// GetGame returns one game by name.
func (s *Store) GetGame(ctx context.Context, name string) (storage.Game, error) {
	if err := ctx.Err(); err != nil {
		return storage.Game{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Game{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Game{}, fmt.Errorf("game name is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT board, generation, delta FROM games WHERE name = ?`,
		name,
	)

	var blob []byte
	var game storage.Game
	if err := row.Scan(&blob, &game.Generation, &game.Delta); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Game{}, storage.ErrNotFound
		}
		return storage.Game{}, fmt.Errorf("get game: %w", err)
	}

	grid, err := s.decompressGrid(blob)
	if err != nil {
		return storage.Game{}, fmt.Errorf("get game %q: %w", name, err)
	}
	game.Grid = grid
	return game, nil
}

// UpdateGame overwrites an existing game record.
func (s *Store) UpdateGame(ctx context.Context, name string, game storage.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("game name is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE games SET board = ?, generation = ?, delta = ? WHERE name = ?`,
		s.compressGrid(game.Grid),
		game.Generation,
		game.Delta,
		name,
	)
	if err != nil {
		return fmt.Errorf("update game: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update game rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// compressGrid serializes the grid to the canonical text seed and compresses
// it. The text form keeps the stored payload human-recoverable and is what
// the original schema shipped.
func (s *Store) compressGrid(grid [][]bool) []byte {
	seed := life.Encode(grid, life.TextOptions{})
	return s.encoder.EncodeAll([]byte(seed), nil)
}

func (s *Store) decompressGrid(blob []byte) ([][]bool, error) {
	raw, err := s.decoder.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress board: %w", err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("decompress board: payload is not valid utf-8")
	}
	grid, err := life.Decode(string(raw), life.TextOptions{})
	if err != nil {
		return nil, fmt.Errorf("decode board: %w", err)
	}
	return grid, nil
}

func isGameUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	message := strings.ToLower(err.Error())
	return strings.Contains(message, "unique constraint failed") &&
		strings.Contains(message, "games.name")
}

var _ storage.GameStore = (*Store)(nil)
