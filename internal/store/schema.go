package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS slots (
    name        TEXT PRIMARY KEY,
    content     TEXT NOT NULL,
    updated_at  TEXT NOT NULL
);
`
