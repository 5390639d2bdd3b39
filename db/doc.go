// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and applies schema migrations.

# Connecting

Open accepts a database type and a connection URL:

	conn, err := db.Open(db.DialectPostgres, "postgres://...")
	conn, err := db.Open(db.DialectSQLite, "file:dotpoll.db")

SQLite URLs get foreign_keys and busy_timeout pragmas appended unless already
present, and the pool is limited to one connection (SQLite has a single
writer).

# Migrations

Migrate applies the embedded migrations for the dialect using golang-migrate:

	if err := db.Migrate(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - migrate.ErrNoChange is not an error.

# Tables

  - polls: id, uuid (unique), title, created_at
  - choices: id, poll_id, details, created_at
  - votes: id, voter, choice_id, poll_id, dots, created_at

# Relationships

	polls 1──* choices
	polls 1──* votes
	choices 1──* votes

votes(choice_id, poll_id) references choices(id, poll_id), so a vote can only
point at a choice of its own poll. Zero-dot votes are rejected by a CHECK
constraint.
*/
package db
