package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var database *sql.DB

// InitDB initializes the SQLite database
func InitDB(path string) error {
	var err error
	database, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	query := `
    CREATE TABLE IF NOT EXISTS predictions (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        inputs TEXT NOT NULL,
        results TEXT NOT NULL,
        created_at DATETIME NOT NULL
    );`
	_, err = database.Exec(query)
	return err
}

// Close releases the database handle.
func Close() error {
	if database == nil {
		return nil
	}
	err := database.Close()
	database = nil
	return err
}

// PredictionRecord is one served prediction. The audit log is write-only on
// the serving path; nothing reads it back to answer a prediction.
type PredictionRecord struct {
	ID        int64              `json:"id"`
	Inputs    map[string]string  `json:"inputs"`
	Results   map[string]float64 `json:"results"`
	CreatedAt time.Time          `json:"created_at"`
}

// SavePrediction appends one served prediction to the audit log.
func SavePrediction(inputs map[string]string, results map[string]float64) error {
	if database == nil {
		return errors.New("database not initialized")
	}
	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return err
	}
	resultsJSON, err := json.Marshal(results)
	if err != nil {
		return err
	}
	_, err = database.Exec(
		`INSERT INTO predictions (inputs, results, created_at) VALUES (?, ?, ?)`,
		string(inputsJSON), string(resultsJSON), time.Now().UTC(),
	)
	return err
}

// RecentPredictions returns up to limit audit entries, newest first.
func RecentPredictions(limit int) ([]PredictionRecord, error) {
	if database == nil {
		return nil, errors.New("database not initialized")
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := database.Query(
		`SELECT id, inputs, results, created_at FROM predictions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]PredictionRecord, 0, limit)
	for rows.Next() {
		var record PredictionRecord
		var inputsJSON, resultsJSON string
		if err := rows.Scan(&record.ID, &inputsJSON, &resultsJSON, &record.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(inputsJSON), &record.Inputs); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(resultsJSON), &record.Results); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
