// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/dotpoll/middleware"
	"github.com/danielhkuo/dotpoll/models"
	"github.com/danielhkuo/dotpoll/polls"
)

type ResultsHandler struct {
	svc *polls.Service
}

func NewResultsHandler(svc *polls.Service) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// GetResults handles GET /api/v1/polls/{uuid}/results
// Results are always visible; choices are ranked by total dots
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollRef := r.PathValue("uuid")
	if pollRef == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "uuid is required")
		return
	}

	results, err := h.svc.GetResults(r.Context(), pollRef)
	if err != nil {
		writeError(w, err, "tally results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Poll:    results.Poll,
		Results: results.Results,
	})
}
