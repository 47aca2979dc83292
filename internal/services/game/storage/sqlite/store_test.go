package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/louisbranch/life.space/internal/services/game/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "games.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestCreateGetGameRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := storage.Game{
		Grid: [][]bool{
			{false, true, false},
			{false, true, false},
			{false, true, false},
		},
		Generation: 4,
		Delta:      4,
	}
	if err := store.CreateGame(context.Background(), "blinker", input); err != nil {
		t.Fatalf("create game: %v", err)
	}

	got, err := store.GetGame(context.Background(), "blinker")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if !reflect.DeepEqual(got.Grid, input.Grid) {
		t.Fatalf("grid = %v, want %v", got.Grid, input.Grid)
	}
	if got.Generation != input.Generation {
		t.Fatalf("generation = %d, want %d", got.Generation, input.Generation)
	}
	if got.Delta != input.Delta {
		t.Fatalf("delta = %d, want %d", got.Delta, input.Delta)
	}
}

func TestCreateGameReturnsAlreadyExistsOnDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := storage.Game{Grid: [][]bool{{true, true}, {true, true}}}
	if err := store.CreateGame(context.Background(), "block", input); err != nil {
		t.Fatalf("create initial game: %v", err)
	}

	err := store.CreateGame(context.Background(), "block", input)
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate create error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestGetGameMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.GetGame(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestUpdateGamePersistsCounters(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.CreateGame(context.Background(), "glider", storage.Game{
		Grid: [][]bool{{true, false}, {false, true}},
	}); err != nil {
		t.Fatalf("create game: %v", err)
	}

	updated := storage.Game{
		Grid:       [][]bool{{false, false}, {false, false}},
		Generation: 1,
		Delta:      2,
	}
	if err := store.UpdateGame(context.Background(), "glider", updated); err != nil {
		t.Fatalf("update game: %v", err)
	}

	got, err := store.GetGame(context.Background(), "glider")
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if !reflect.DeepEqual(got, updated) {
		t.Fatalf("game = %+v, want %+v", got, updated)
	}
}

func TestUpdateGameMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	err := store.UpdateGame(context.Background(), "missing", storage.Game{Grid: [][]bool{{true}}})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("update missing error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestCreateGameRequiresName(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.CreateGame(context.Background(), "  ", storage.Game{}); err == nil {
		t.Fatal("expected name validation error")
	}
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.CreateGame(ctx, "x", storage.Game{}); err == nil {
		t.Fatal("expected context error on create")
	}
	if _, err := store.GetGame(ctx, "x"); err == nil {
		t.Fatal("expected context error on get")
	}
}
