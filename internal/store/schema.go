package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    run_id               TEXT PRIMARY KEY,
    kind                 TEXT NOT NULL,
    output_path          TEXT NOT NULL,
    scenarios            INTEGER NOT NULL DEFAULT 0,
    records              INTEGER NOT NULL DEFAULT 0,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_values (
    run_id               TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    variable             TEXT NOT NULL,
    value                TEXT NOT NULL,
    PRIMARY KEY (run_id, variable)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind);
`
