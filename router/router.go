// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/dotpoll/handlers"
	"github.com/danielhkuo/dotpoll/middleware"
	"github.com/danielhkuo/dotpoll/polls"
)

func NewRouter(svc *polls.Service) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll creation and lookup
	mux.HandleFunc("PUT /api/v1/polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("POST /api/v1/polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /api/v1/polls/{uuid}", middleware.WithLogging(pollHandler.GetPoll))

	// Voting
	mux.HandleFunc("POST /api/v1/polls/{uuid}/vote", middleware.WithLogging(votingHandler.CastBallot))

	// Results
	mux.HandleFunc("GET /api/v1/polls/{uuid}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Wilkommen"))
	})

	return mux
}
