// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Dot Poll API.

# Handler Types

Each handler is a struct wrapping the poll service:

  - PollHandler: create and fetch polls
  - VotingHandler: ballot submission
  - ResultsHandler: ranked tallies

Handlers are created via constructor functions that accept *polls.Service:

	pollHandler := handlers.NewPollHandler(svc)

Handlers only translate HTTP to service calls; all rules live in the
polls, ballot, and tally packages.

# Routes

	PUT  /api/v1/polls                → CreatePoll (201, poll + choices)
	GET  /api/v1/polls/{uuid}         → GetPoll
	POST /api/v1/polls/{uuid}/vote    → CastBallot
	GET  /api/v1/polls/{uuid}/results → GetResults

# Ballots

A ballot spreads dots across choices by choice id:

	{"voter": "alice", "choices": {"12": 3, "13": 1}}

A missing voter is recorded as "Unknown". Zero entries are dropped.

# Errors

	models.ErrValidation → 400
	models.ErrNotFound   → 404
	models.ErrStore      → 500 (cause logged, not returned)
*/
package handlers
