package web

import (
	"errors"
	"net/http"

	"github.com/louisbranch/life.space/internal/life"
	"github.com/louisbranch/life.space/internal/services/game/storage"
)

// httpStatus maps engine and storage failures onto response codes: malformed
// input is the client's fault, everything else is ours.
func httpStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		return http.StatusConflict
	}

	var badReq badRequestError
	var sepErr life.InvalidSeparatorError
	var charErr life.InvalidSeedCharacterError
	if errors.As(err, &badReq) || errors.As(err, &sepErr) || errors.As(err, &charErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
