// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/dotpoll/middleware"
	"github.com/danielhkuo/dotpoll/models"
	"github.com/danielhkuo/dotpoll/polls"
)

type VotingHandler struct {
	svc *polls.Service
}

func NewVotingHandler(svc *polls.Service) *VotingHandler {
	return &VotingHandler{svc: svc}
}

// CastBallot handles POST /api/v1/polls/{uuid}/vote
func (h *VotingHandler) CastBallot(w http.ResponseWriter, r *http.Request) {
	pollRef := r.PathValue("uuid")
	if pollRef == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "uuid is required")
		return
	}

	var req models.CastBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	recorded, err := h.svc.CastBallot(r.Context(), pollRef, req.Voter, req.Choices)
	if err != nil {
		writeError(w, err, "cast ballot")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CastBallotResponse{
		Recorded: recorded,
		Message:  "voted",
	})
}
