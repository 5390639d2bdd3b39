// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and error types.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: title, choices ([]string)
  - CastBallotRequest: voter, choices (map[choice_id]dots)

# Response Types

  - PollWithChoices: poll, choices
  - CastBallotResponse: recorded, message
  - ResultsResponse: poll, results
  - ErrorResponse: error, message

# Domain Types

  - Poll: title and public uuid; the sequential ID is never serialized
  - Choice: one option of a poll
  - Vote: one persisted (voter, choice, dots) row
  - Ballot: raw voter submission
  - VoteRow: validated non-zero entry of a ballot
  - ChoiceResult: total dots and voter list for one choice

# Errors

Three error kinds, matched with errors.Is:

	ErrValidation // caller input violates an invariant
	ErrNotFound   // referenced poll does not exist
	ErrStore      // backing database could not complete the operation

Use the constructors to wrap them with context:

	return models.ValidationError("unknown choice id %d", id)
	return models.StoreError("insert poll", err)
*/
package models
