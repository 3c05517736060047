package postgres

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS invitations (
    id          BIGSERIAL PRIMARY KEY,
    code        TEXT        NOT NULL UNIQUE,
    email       TEXT        NOT NULL,
    name        TEXT        NOT NULL DEFAULT '',
    used        BOOLEAN     NOT NULL DEFAULT FALSE,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS messages (
    id          BIGSERIAL PRIMARY KEY,
    sender_name TEXT        NOT NULL,
    invite_code TEXT        NOT NULL,
    content     TEXT        NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS polls (
    id       TEXT     NOT NULL PRIMARY KEY,
    question TEXT     NOT NULL,
    options  TEXT[]   NOT NULL,
    votes    BIGINT[] NOT NULL,
    position INT      NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS teaspills (
    id         TEXT        NOT NULL PRIMARY KEY,
    content    TEXT        NOT NULL,
    alias      TEXT        NOT NULL,
    likes      INT         NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS predictions (
    id         TEXT        NOT NULL PRIMARY KEY,
    name       TEXT        NOT NULL,
    prediction TEXT        NOT NULL,
    category   TEXT        NOT NULL,
    correct    BOOLEAN,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
