package settings

import "strings"

// Get returns the value at a dot-separated key path, or fallback when any
// intermediate key is missing or not a mapping. Lookups never fail hard.
func (s *Store) Get(keyPath string, fallback any) any {
	doc, err := s.Load()
	if err != nil {
		return fallback
	}

	var value any = doc
	for _, key := range strings.Split(keyPath, ".") {
		m, ok := value.(map[string]any)
		if !ok {
			return fallback
		}
		value, ok = m[key]
		if !ok {
			return fallback
		}
	}
	return value
}

// Set writes a value at a dot-separated key path, materializing missing
// intermediate mappings, and persists the result through Update.
func (s *Store) Set(keyPath string, value any, createBackup bool) error {
	keys := strings.Split(keyPath, ".")

	modification := map[string]any{}
	current := modification
	for _, key := range keys[:len(keys)-1] {
		child := map[string]any{}
		current[key] = child
		current = child
	}
	current[keys[len(keys)-1]] = value

	return s.Update(modification, createBackup)
}

// Remove deletes the value at a dot-separated key path and saves.
// Returns false without touching the file when the path does not resolve.
func (s *Store) Remove(keyPath string, createBackup bool) (bool, error) {
	doc, err := s.Load()
	if err != nil {
		return false, err
	}

	keys := strings.Split(keyPath, ".")
	current := doc
	for _, key := range keys[:len(keys)-1] {
		child, ok := current[key].(map[string]any)
		if !ok {
			return false, nil
		}
		current = child
	}

	last := keys[len(keys)-1]
	if _, ok := current[last]; !ok {
		return false, nil
	}
	delete(current, last)

	if err := s.Save(doc, createBackup); err != nil {
		return false, err
	}
	return true, nil
}
