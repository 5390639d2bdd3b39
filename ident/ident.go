// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidRef is returned for references that are not UUIDs.
var ErrInvalidRef = errors.New("invalid poll reference")

// NewExternalRef creates a random 128-bit poll reference in canonical UUID form.
// Uniqueness is enforced by the polls.uuid constraint, not checked here.
func NewExternalRef() string {
	return uuid.New().String()
}

// ParseExternalRef validates a caller-supplied reference and returns it in
// canonical lowercase form so it matches what NewExternalRef stored.
func ParseExternalRef(ref string) (string, error) {
	if ref == "" {
		return "", ErrInvalidRef
	}
	id, err := uuid.Parse(ref)
	if err != nil {
		return "", ErrInvalidRef
	}
	return id.String(), nil
}
