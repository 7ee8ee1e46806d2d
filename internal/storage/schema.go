package storage

const schema = `
-- A single key-value table holds every record. Keys are namespaced with a
-- prefix per record kind: 'card/<itemID>' for schedule state and
-- 'history/<itemID>/<uuid>' for review history entries.
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL
);
`
