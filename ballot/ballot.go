// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"sort"
	"strconv"
	"strings"

	"github.com/danielhkuo/dotpoll/models"
)

// Valid is a ballot that passed validation and is ready to persist.
type Valid struct {
	Voter string
	Rows  []models.VoteRow
}

// Validate checks a ballot against the choices of its target poll.
//
// A blank voter becomes models.DefaultVoter. Any choice id that does not
// belong to the poll rejects the whole ballot. Weights are otherwise taken as
// given, negative ones included. Zero-dot entries are dropped; the remaining
// rows follow the poll's choice order.
func Validate(b models.Ballot, choices []models.Choice) (Valid, error) {
	voter := strings.TrimSpace(b.Voter)
	if voter == "" {
		voter = models.DefaultVoter
	}

	known := make(map[int64]bool, len(choices))
	for _, c := range choices {
		known[c.ID] = true
	}

	var unknown []int64
	for choiceID := range b.Choices {
		if !known[choiceID] {
			unknown = append(unknown, choiceID)
		}
	}

	if len(unknown) > 0 {
		return Valid{}, models.ValidationError("choice ids not in poll: %s", joinIDs(unknown))
	}

	rows := []models.VoteRow{}
	for _, c := range choices {
		dots, ok := b.Choices[c.ID]
		if !ok || dots == 0 {
			continue
		}
		rows = append(rows, models.VoteRow{ChoiceID: c.ID, Voter: voter, Dots: dots})
	}

	return Valid{Voter: voter, Rows: rows}, nil
}

func joinIDs(ids []int64) string {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}
