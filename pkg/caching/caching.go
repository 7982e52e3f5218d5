// Package caching provides a simple file-based cache with a TTL, used to
// avoid re-billing the summarization service for an unchanged data set.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// filename hashes the key so arbitrary prompt text maps to a safe filename.
func (c *Cache) filename(key string) string {
	hash := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", hash)
}

// Get retrieves an item from the cache.
// It returns the data and true if the item is found and not expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	filePath := filepath.Join(c.path, c.filename(key))

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, false
	}

	if time.Since(info.ModTime()) > c.ttl {
		return nil, false // expired
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}

	return data, true
}

// Set adds an item to the cache.
func (c *Cache) Set(key string, data []byte) error {
	filePath := filepath.Join(c.path, c.filename(key))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
