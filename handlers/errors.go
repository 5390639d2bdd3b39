// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/dotpoll/middleware"
	"github.com/danielhkuo/dotpoll/models"
)

// writeError maps a core error kind to an HTTP status and writes the error body.
// Store failures are logged and never leak their cause to the client.
func writeError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, clientMessage(err, models.ErrValidation))
	case errors.Is(err, models.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	default:
		slog.Error("failed to "+op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+op)
	}
}

// clientMessage strips the kind prefix so "validation failed: title is required"
// becomes "title is required"
func clientMessage(err, kind error) string {
	return strings.TrimPrefix(err.Error(), kind.Error()+": ")
}
