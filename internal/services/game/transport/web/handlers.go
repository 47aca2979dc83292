// Package web serves the game HTTP surface: create a named board from a
// text seed, and render it as plain text or SVG, optionally advancing one
// generation per request.
package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/louisbranch/life.space/internal/life"
	"github.com/louisbranch/life.space/internal/services/game/storage"
)

const projectURL = "https://github.com/louisbranch/life.space"

// maxSeedBytes bounds the accepted seed payload. Grid size limits are a
// boundary policy; the engine itself runs any rectangular grid.
const maxSeedBytes = 1 << 20

// Handlers routes game requests to the configured store.
type Handlers struct {
	store storage.GameStore
}

// NewHandlers builds the game request handlers.
func NewHandlers(store storage.GameStore) *Handlers {
	return &Handlers{store: store}
}

// Routes returns the routed mux for the game surface.
func (h *Handlers) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /_ping", h.handlePing)
	mux.HandleFunc("GET /favicon.ico", h.handleFavicon)
	mux.HandleFunc("GET /{name}", h.handleRender)
	mux.HandleFunc("POST /{name}", h.handleCreate)
	return mux
}

func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, projectURL, http.StatusFound)
}

func (h *Handlers) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "pong")
}

func (h *Handlers) handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

// handleCreate decodes the request body as a seed and stores a fresh board
// under the requested name.
func (h *Handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if !validGameName(name) {
		writeError(w, badRequestf("game name must be alphanumeric or '-'"))
		return
	}

	opts, err := parseTextOptions(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxSeedBytes+1))
	if err != nil {
		writeError(w, fmt.Errorf("read seed: %w", err))
		return
	}
	if len(body) > maxSeedBytes {
		writeError(w, badRequestf("seed exceeds %d bytes", maxSeedBytes))
		return
	}

	board, err := life.NewBoard(string(body), opts)
	if err != nil {
		writeError(w, err)
		return
	}

	game := storage.Game{Grid: board.Grid(), Generation: board.Generation(), Delta: board.Delta()}
	if err := h.store.CreateGame(r.Context(), name, game); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			writeErrorMessage(w, http.StatusConflict, fmt.Sprintf("game %q already exists", name))
			return
		}
		writeError(w, err)
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	_, _ = io.WriteString(w, board.Text(life.TextOptions{}))
}

// handleRender loads a board, optionally advances and persists one
// generation, and renders it in the format named by the path extension.
func (h *Handlers) handleRender(w http.ResponseWriter, r *http.Request) {
	name, format := splitFormat(r.PathValue("name"))

	params, err := parseRenderParams(r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	game, err := h.store.GetGame(r.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeErrorMessage(w, http.StatusNotFound, fmt.Sprintf("game %q not found", name))
			return
		}
		writeError(w, err)
		return
	}
	board := life.Restore(game.Grid, game.Generation, game.Delta)

	if params.next {
		board.Next()
		update := storage.Game{Grid: board.Grid(), Generation: board.Generation(), Delta: board.Delta()}
		if err := h.store.UpdateGame(r.Context(), name, update); err != nil {
			writeError(w, err)
			return
		}
	}

	setBoardHeaders(w.Header(), board)
	switch format {
	case "svg":
		svg, err := board.SVG(params.svg)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = io.WriteString(w, svg)
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, board.Text(params.text))
	}
}

// splitFormat separates an optional rendering extension from the game name.
// Stored names never contain dots, so the last dot always starts the
// extension.
func splitFormat(raw string) (name, format string) {
	idx := strings.LastIndex(raw, ".")
	if idx < 0 {
		return raw, "txt"
	}
	return raw[:idx], raw[idx+1:]
}

func validGameName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func setBoardHeaders(header http.Header, board *life.Board) {
	header.Set("Cache-Control", "no-cache, no-store")
	header.Set("Expires", "Thu, 01 Jan 1970 00:00:00 GMT")
	header.Set("ETag", strconv.Itoa(board.Generation()))
	header.Set("x-life-generation", strconv.Itoa(board.Generation()))
	header.Set("x-life-delta", strconv.Itoa(board.Delta()))
	header.Set("Access-Control-Allow-Origin", "*")
}

func writeError(w http.ResponseWriter, err error) {
	writeErrorMessage(w, httpStatus(err), err.Error())
}

func writeErrorMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	http.Error(w, message, status)
}
