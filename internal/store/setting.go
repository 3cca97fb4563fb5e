package store

import (
	"database/sql"
	"encoding/json"

	"bookhaven/internal/log"
	"bookhaven/internal/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UpsertSetting stores one key/value row, value is raw JSON.
func (s *Store) UpsertSetting(setting *model.Setting) error {
	stmt := `
		INSERT INTO settings (key, value)
		VALUES (?,?)
		ON CONFLICT(key) DO UPDATE SET value = EXCLUDED.value`

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(stmt, setting.Key, string(setting.Value)); err != nil {
		tx.Rollback()
		log.Error("Failed to upsert setting", zap.Error(err), zap.String("key", setting.Key))
		return err
	}
	return tx.Commit()
}

func (s *Store) GetSetting(key string) (*model.Setting, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &model.Setting{Key: key, Value: json.RawMessage(value)}, nil
}

const jwtSecretKey = "security.jwtSecret"

// GetOrCreateJWTSecret returns the signing secret, generating and
// persisting one on first use.
func (s *Store) GetOrCreateJWTSecret() (string, error) {
	setting, err := s.GetSetting(jwtSecretKey)
	if err != nil {
		return "", err
	}
	if setting != nil {
		var secret string
		if err := json.Unmarshal(setting.Value, &secret); err == nil && secret != "" {
			return secret, nil
		}
	}

	secret := uuid.NewString()
	value, _ := json.Marshal(secret)
	if err := s.UpsertSetting(&model.Setting{Key: jwtSecretKey, Value: value}); err != nil {
		return "", err
	}
	return secret, nil
}

// ListSettings returns every setting as a key to raw JSON value map.
func (s *Store) ListSettings() (map[string]json.RawMessage, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		log.Error("Failed to query settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return settings, nil
}
