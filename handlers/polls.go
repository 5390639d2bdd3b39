// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/dotpoll/middleware"
	"github.com/danielhkuo/dotpoll/models"
	"github.com/danielhkuo/dotpoll/polls"
)

type PollHandler struct {
	svc *polls.Service
}

func NewPollHandler(svc *polls.Service) *PollHandler {
	return &PollHandler{svc: svc}
}

// CreatePoll handles PUT /api/v1/polls (and POST)
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	created, err := h.svc.CreatePoll(r.Context(), req.Title, req.Choices)
	if err != nil {
		writeError(w, err, "create poll")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, created)
}

// GetPoll handles GET /api/v1/polls/{uuid}
// Returns the poll and its choices in creation order
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollRef := r.PathValue("uuid")
	if pollRef == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "uuid is required")
		return
	}

	poll, err := h.svc.GetPoll(r.Context(), pollRef)
	if err != nil {
		writeError(w, err, "look up poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}
