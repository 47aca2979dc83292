// Package kv provides the key-value game store: one JSON document per game
// in a bbolt bucket. Writes are last-write-wins under bbolt's single-writer
// transaction model.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/louisbranch/life.space/internal/services/game/storage"
)

var bucketGames = []byte("games")

// Store persists game boards in a bbolt database.
type Store struct {
	db *bolt.DB
}

// gameDocument is the stored JSON shape.
type gameDocument struct {
	Grid       [][]bool `json:"grid"`
	Generation int      `json:"generation"`
	Delta      int      `json:"delta"`
}

// Open opens a bbolt game store and ensures the games bucket exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	db, err := bolt.Open(filepath.Clean(path), 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open kv db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketGames)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure games bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the bbolt handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// CreateGame inserts one game document; the name must be unused. The
// existence check and the put run in one read-write transaction, so
// concurrent creates of the same name cannot both succeed.
func (s *Store) CreateGame(ctx context.Context, name string, game storage.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("game name is required")
	}

	payload, err := marshalGame(game)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketGames)
		if bucket.Get([]byte(name)) != nil {
			return storage.ErrAlreadyExists
		}
		return bucket.Put([]byte(name), payload)
	})
}

// GetGame returns one game by name.
func (s *Store) GetGame(ctx context.Context, name string) (storage.Game, error) {
	if err := ctx.Err(); err != nil {
		return storage.Game{}, err
	}
	if s == nil || s.db == nil {
		return storage.Game{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.Game{}, fmt.Errorf("game name is required")
	}

	var doc gameDocument
	err := s.db.View(func(tx *bolt.Tx) error {
		payload := tx.Bucket(bucketGames).Get([]byte(name))
		if payload == nil {
			return storage.ErrNotFound
		}
		if err := json.Unmarshal(payload, &doc); err != nil {
			return fmt.Errorf("decode game document: %w", err)
		}
		return nil
	})
	if err != nil {
		return storage.Game{}, err
	}
	grid := doc.Grid
	if grid == nil {
		grid = [][]bool{}
	}
	return storage.Game{Grid: grid, Generation: doc.Generation, Delta: doc.Delta}, nil
}

// UpdateGame overwrites an existing game document.
func (s *Store) UpdateGame(ctx context.Context, name string, game storage.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("game name is required")
	}

	payload, err := marshalGame(game)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketGames)
		if bucket.Get([]byte(name)) == nil {
			return storage.ErrNotFound
		}
		return bucket.Put([]byte(name), payload)
	})
}

func marshalGame(game storage.Game) ([]byte, error) {
	doc := gameDocument{Grid: game.Grid, Generation: game.Generation, Delta: game.Delta}
	if doc.Grid == nil {
		doc.Grid = [][]bool{}
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode game document: %w", err)
	}
	return payload, nil
}

var _ storage.GameStore = (*Store)(nil)
