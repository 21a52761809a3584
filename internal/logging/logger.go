// Package logging records every generation call in a local SQLite database
// so sessions can be audited after the fact: which intent ran, what was
// asked, what came back, and whether fallback content had to be substituted.
package logging

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Metadata describes one generation call, stored as a JSON column.
type Metadata struct {
	Model        string        `json:"model"`
	MaxTokens    int           `json:"max_tokens"`
	Temperature  float64       `json:"temperature"`
	ResponseTime time.Duration `json:"response_time_ms"`
}

type GenerationLogger struct {
	db *sql.DB
}

func NewGenerationLogger(path string) (*GenerationLogger, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open generation log database: %w", err)
	}

	logger := &GenerationLogger{db: db}
	if err := logger.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create generation log tables: %w", err)
	}

	return logger, nil
}

func (gl *GenerationLogger) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS generations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		session_id TEXT NOT NULL,
		intent TEXT NOT NULL,
		prompt TEXT NOT NULL,
		response TEXT NOT NULL,
		fallback TEXT NOT NULL,
		metadata TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_generations_timestamp ON generations(timestamp);
	CREATE INDEX IF NOT EXISTS idx_generations_session ON generations(session_id);
	`

	_, err := gl.db.Exec(schema)
	return err
}

// Record stores one generation call. fallback is the failure kind that
// triggered a substitution, or "none" when the reply was used as-is.
func (gl *GenerationLogger) Record(sessionID, intent, prompt, response, fallback string, meta Metadata) error {
	metadataJSON, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal generation metadata: %w", err)
	}

	_, err = gl.db.Exec(`
		INSERT INTO generations (session_id, intent, prompt, response, fallback, metadata)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sessionID, intent, prompt, response, fallback, string(metadataJSON))

	return err
}

func (gl *GenerationLogger) Close() error {
	return gl.db.Close()
}
