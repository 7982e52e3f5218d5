package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dtnitsch/romaneio/models"
)

// Fixed blob keys. These match the identifiers the data has always been
// stored under, so existing databases keep working.
const (
	manifestsKey = "romaneio_manifests"
	settingsKey  = "romaneio_settings"
)

// getBlob returns the stored document for key, with found=false when the key
// has never been written.
func (db *DB) getBlob(key string) ([]byte, bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// setBlob replaces the stored document for key (upsert).
func (db *DB) setBlob(key string, value []byte) error {
	_, err := db.Exec(`
		INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

// LoadManifests returns the stored manifest collection, or an empty
// collection when nothing has been persisted yet. Unknown JSON fields in the
// stored document are ignored.
func (db *DB) LoadManifests() ([]models.Manifest, error) {
	data, found, err := db.getBlob(manifestsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Manifest{}, nil
	}

	var manifests []models.Manifest
	if err := json.Unmarshal(data, &manifests); err != nil {
		return nil, fmt.Errorf("failed to decode manifests: %w", err)
	}
	return manifests, nil
}

// SaveManifests replaces the entire stored collection.
func (db *DB) SaveManifests(manifests []models.Manifest) error {
	data, err := json.Marshal(manifests)
	if err != nil {
		return fmt.Errorf("failed to encode manifests: %w", err)
	}
	return db.setBlob(manifestsKey, data)
}

// LoadSettings returns the stored settings, or the defaults when unset.
func (db *DB) LoadSettings() (models.AppSettings, error) {
	data, found, err := db.getBlob(settingsKey)
	if err != nil {
		return models.AppSettings{}, err
	}
	if !found {
		return models.DefaultSettings(), nil
	}

	var settings models.AppSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.AppSettings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

// SaveSettings replaces the stored settings.
func (db *DB) SaveSettings(settings models.AppSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return db.setBlob(settingsKey, data)
}
