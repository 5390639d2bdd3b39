// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls is the single entry point HTTP handlers use to create polls,
cast ballots, and read results.

# Construction

The service receives its store at construction time:

	svc := polls.NewService(store.New(conn))

# Operations

	CreatePoll(ctx, title, choices)          → PollWithChoices
	GetPoll(ctx, pollRef)                    → PollWithChoices
	CastBallot(ctx, pollRef, voter, weights) → rows recorded
	GetResults(ctx, pollRef)                 → Results

# Errors

Every failure wraps one of the kinds in package models:

  - models.ErrValidation: empty title, foreign choice id
  - models.ErrNotFound: pollRef is malformed or unknown
  - models.ErrStore: the database could not complete the operation

Nothing is retried and no operation leaves partial rows behind.
*/
package polls
