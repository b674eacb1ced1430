// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files:
// the filename is the key and the trimmed file contents are the value.
//
// Supported key file: gavel-api-key (sent as X-API-Key to the gateway).
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store holds loaded secrets keyed by filename.
type Store map[string]string

// APIKey returns the gateway API key, empty when not configured.
func (s Store) APIKey() string { return s["gavel-api-key"] }

// Load reads every regular file in dir into a Store. A missing directory
// is not an error and yields an empty store. Unreadable files produce a
// warning on stderr but do not abort; empty values are skipped.
func Load(dir string) (Store, error) {
	store := Store{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			store[name] = value
		}
	}

	return store, nil
}
