// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates and parses external poll references.

# External References

Every poll gets an opaque, unguessable reference distinct from its sequential
database key:

	ref := ident.NewExternalRef() // "6f1c9a4e-1d2b-4c3a-9e8f-0a1b2c3d4e5f"

References are random (version 4) UUIDs. Generation cannot fail. The database
UNIQUE constraint on polls.uuid is the authority on uniqueness.

# Parsing

Inbound references from URLs are normalized before lookup:

	ref, err := ident.ParseExternalRef(r.PathValue("uuid"))
	if err != nil {
		// ErrInvalidRef: treat as an unknown poll
	}

Uppercase and braced forms are accepted and returned in canonical lowercase.
*/
package ident
