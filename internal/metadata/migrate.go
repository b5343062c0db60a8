package metadata

import (
	"github.com/superclaude-org/superclaude/internal/settings"
)

// migratedKeys are the superclaude-specific top-level keys that belong in
// the metadata document, never in the host's settings.json.
var migratedKeys = []string{"components", "framework", "superclaude", "mcp"}

// Migrate moves superclaude-specific keys out of settings.json into the
// metadata document, deep-merging with any existing metadata, then rewrites
// a cleaned settings file (with backup). Returns false when settings.json
// held nothing to migrate.
func (s *Store) Migrate(st *settings.Store) (bool, error) {
	doc, err := st.Load()
	if err != nil {
		return false, err
	}

	toMigrate := map[string]any{}
	for _, key := range migratedKeys {
		if value, ok := doc[key]; ok {
			toMigrate[key] = value
		}
	}
	if len(toMigrate) == 0 {
		return false, nil
	}

	existing, err := s.Load()
	if err != nil {
		return false, err
	}
	if err := s.Save(settings.Merge(existing, toMigrate)); err != nil {
		return false, err
	}

	cleaned := make(map[string]any, len(doc))
	for key, value := range doc {
		cleaned[key] = value
	}
	for _, key := range migratedKeys {
		delete(cleaned, key)
	}

	if err := st.Save(cleaned, true); err != nil {
		return false, err
	}
	return true, nil
}
