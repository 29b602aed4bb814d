package db

// SchemaSQL is the complete schema of the car store database.
//
// seq records insertion order; id is the car's public identifier.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS cars (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id INTEGER NOT NULL UNIQUE,
	brand TEXT NOT NULL,
	model TEXT NOT NULL,
	doors INTEGER NOT NULL,
	line_id TEXT NOT NULL,
	status TEXT NOT NULL CHECK (status IN ('IN_PROGRESS')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_cars_line ON cars(line_id);
`

// GetSchemaSQL returns the schema used by Open and by repository tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
