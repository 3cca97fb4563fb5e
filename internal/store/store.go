package store

import (
	"database/sql"
	"encoding/json"
	"sync"

	"bookhaven/internal/log"

	"go.uber.org/zap"
)

type Store struct {
	db *sql.DB

	// UserCache is keyed by user id.
	UserCache sync.Map // map[int]*model.User
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) DBStats() sql.DBStats {
	return s.db.Stats()
}

func (s *Store) Ping() error {
	return s.db.Ping()
}

// toJSON marshals a JSON column value, falling back to the given default on
// nil input.
func toJSON(v any, fallback string) string {
	if v == nil {
		return fallback
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Error("Failed to marshal JSON column", zap.Error(err))
		return fallback
	}
	return string(b)
}

// fromJSON unmarshals a JSON column into out, tolerating empty text.
func fromJSON(raw string, out any) {
	if raw == "" {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Warn("Failed to unmarshal JSON column", zap.Error(err), zap.String("raw", raw))
	}
}
