// Package metadata manages superclaude's own bookkeeping file, kept
// separate from the host application's settings: the component registry
// and the framework version record.
package metadata

import (
	"path/filepath"
	"time"

	"github.com/superclaude-org/superclaude/internal/settings"
)

// MetadataFileName is the name of the bookkeeping file inside the
// installation directory.
const MetadataFileName = ".superclaude-metadata.json"

// Store manages the metadata document. Unlike the settings store it takes
// no backups: the registry can always be rebuilt by reinstalling.
type Store struct {
	// Dir is the installation directory containing the metadata file.
	Dir string

	now func() time.Time
}

// NewStore creates a metadata store for the given installation directory.
func NewStore(installDir string) *Store {
	return &Store{Dir: installDir, now: time.Now}
}

// FilePath returns the path to the metadata file.
func (s *Store) FilePath() string {
	return filepath.Join(s.Dir, MetadataFileName)
}

// Load reads the metadata document, empty when the file is absent.
func (s *Store) Load() (map[string]any, error) {
	return settings.LoadDocument(s.FilePath())
}

// Save writes the metadata document with the same formatting conventions
// as settings.json (2-space indent, sorted keys).
func (s *Store) Save(doc map[string]any) error {
	return settings.WriteDocument(s.FilePath(), doc)
}

// RegisterComponent upserts a component under components[name], stamping
// installed_at with the current time.
func (s *Store) RegisterComponent(name string, info map[string]any) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}

	components, ok := doc["components"].(map[string]any)
	if !ok {
		components = map[string]any{}
		doc["components"] = components
	}

	entry := make(map[string]any, len(info)+1)
	for key, value := range info {
		entry[key] = value
	}
	entry["installed_at"] = s.now().Format(time.RFC3339)
	components[name] = entry

	return s.Save(doc)
}

// UnregisterComponent removes a component registration.
// Returns false when the component was not registered.
func (s *Store) UnregisterComponent(name string) (bool, error) {
	doc, err := s.Load()
	if err != nil {
		return false, err
	}

	components, ok := doc["components"].(map[string]any)
	if !ok {
		return false, nil
	}
	if _, ok := components[name]; !ok {
		return false, nil
	}
	delete(components, name)

	if err := s.Save(doc); err != nil {
		return false, err
	}
	return true, nil
}

// InstalledComponents returns the component registry, a mapping of
// component name to its recorded info.
func (s *Store) InstalledComponents() map[string]map[string]any {
	doc, err := s.Load()
	if err != nil {
		return nil
	}
	components, ok := doc["components"].(map[string]any)
	if !ok {
		return nil
	}

	result := make(map[string]map[string]any, len(components))
	for name, raw := range components {
		if info, ok := raw.(map[string]any); ok {
			result[name] = info
		}
	}
	return result
}

// IsInstalled reports whether a component is registered.
func (s *Store) IsInstalled(name string) bool {
	_, ok := s.InstalledComponents()[name]
	return ok
}

// ComponentVersion returns the recorded version of a component,
// empty when the component is not registered.
func (s *Store) ComponentVersion(name string) string {
	info, ok := s.InstalledComponents()[name]
	if !ok {
		return ""
	}
	version, _ := info["version"].(string)
	return version
}

// SetFrameworkVersion records the framework version and update time.
func (s *Store) SetFrameworkVersion(version string) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}

	framework, ok := doc["framework"].(map[string]any)
	if !ok {
		framework = map[string]any{}
		doc["framework"] = framework
	}
	framework["version"] = version
	framework["updated_at"] = s.now().Format(time.RFC3339)

	return s.Save(doc)
}

// FrameworkVersion returns the recorded framework version, empty when unset.
func (s *Store) FrameworkVersion() string {
	doc, err := s.Load()
	if err != nil {
		return ""
	}
	framework, ok := doc["framework"].(map[string]any)
	if !ok {
		return ""
	}
	version, _ := framework["version"].(string)
	return version
}
