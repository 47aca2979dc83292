// Package storage defines persistence contracts for named game boards.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates a requested game record is missing.
	ErrNotFound = errors.New("game not found")
	// ErrAlreadyExists indicates a game with the same name already exists.
	ErrAlreadyExists = errors.New("game already exists")
)

// Game stores one persisted board: the cell grid plus the generation and
// delta counters. Adapters must round-trip all three exactly.
type Game struct {
	Grid       [][]bool
	Generation int
	Delta      int
}

// GameStore persists named game boards. Concurrency control for overlapping
// writes to the same name is the adapter's concern.
type GameStore interface {
	CreateGame(ctx context.Context, name string, game Game) error
	GetGame(ctx context.Context, name string) (Game, error)
	UpdateGame(ctx context.Context, name string, game Game) error
	Close() error
}
