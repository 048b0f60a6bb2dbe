package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    type        TEXT NOT NULL CHECK (type IN ('income', 'expense'))
);

CREATE TABLE IF NOT EXISTS transactions (
    id               TEXT PRIMARY KEY,
    type             TEXT NOT NULL CHECK (type IN ('income', 'expense')),
    amount           REAL NOT NULL CHECK (amount >= 0),
    category_id      TEXT,
    note             TEXT,
    date             TEXT NOT NULL,
    confirmed        INTEGER NOT NULL DEFAULT 0,
    recur_frequency  TEXT,
    recur_weekday    INTEGER,
    recur_end_date   TEXT,
    recur_last_gen   TEXT
);

CREATE TABLE IF NOT EXISTS budgets (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    category_id  TEXT,
    goal_amount  REAL NOT NULL CHECK (goal_amount >= 0),
    start_date   TEXT NOT NULL,
    end_date     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
CREATE INDEX IF NOT EXISTS idx_transactions_category ON transactions(category_id);
CREATE INDEX IF NOT EXISTS idx_budgets_period ON budgets(start_date, end_date);
`
