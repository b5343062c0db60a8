// Package settings manages the host application's settings.json document:
// tolerant loading, deep-merge updates, timestamped backups with retention
// pruning, and dot-path accessors over the raw JSON structure.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/superclaude-org/superclaude/internal/logger"
)

// SettingsFileName is the name of the host settings file.
const SettingsFileName = "settings.json"

// DefaultRetention is the number of settings backups kept after pruning.
const DefaultRetention = 10

// backupTimestampFormat produces settings_YYYYMMDD_HHMMSS.json names.
const backupTimestampFormat = "20060102_150405"

// Store manages the settings document inside an installation directory.
type Store struct {
	// Dir is the installation directory containing settings.json.
	Dir string
	// Retention is the maximum number of backups kept after each snapshot.
	Retention int

	now func() time.Time
}

// NewStore creates a settings store for the given installation directory.
func NewStore(installDir string) *Store {
	return &Store{
		Dir:       installDir,
		Retention: DefaultRetention,
		now:       time.Now,
	}
}

// FilePath returns the path to the settings file.
func (s *Store) FilePath() string {
	return filepath.Join(s.Dir, SettingsFileName)
}

// BackupDir returns the directory holding settings backups.
func (s *Store) BackupDir() string {
	return filepath.Join(s.Dir, "backups", "settings")
}

// Load reads the settings document. A missing file yields an empty
// document; an unreadable or malformed file yields a *ConfigFormatError.
func (s *Store) Load() (map[string]any, error) {
	return LoadDocument(s.FilePath())
}

// Save writes the document with 2-space indentation and sorted keys.
// When createBackup is true and a settings file already exists, a
// timestamped snapshot is taken first; a failed snapshot aborts the save.
// On write failure the previous file version remains intact.
func (s *Store) Save(doc map[string]any, createBackup bool) error {
	path := s.FilePath()

	if createBackup {
		if _, err := os.Stat(path); err == nil {
			if _, err := s.createBackup(); err != nil {
				return err
			}
		}
	}

	if err := WriteDocument(path, doc); err != nil {
		return err
	}
	return nil
}

// Update deep-merges modifications into the current document and saves.
func (s *Store) Update(modifications map[string]any, createBackup bool) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(Merge(existing, modifications), createBackup)
}

// BackupInfo describes one settings backup on disk.
type BackupInfo struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// ListBackups returns the available settings backups, newest first.
func (s *Store) ListBackups() []BackupInfo {
	entries, err := os.ReadDir(s.BackupDir())
	if err != nil {
		return nil
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() || !isBackupName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Name:     entry.Name(),
			Path:     filepath.Join(s.BackupDir(), entry.Name()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Modified.After(backups[j].Modified)
	})
	return backups
}

// RestoreBackup replaces the live settings file with the named backup.
// The backup must parse as JSON; the current file is snapshotted before it
// is replaced. Returns false, leaving current settings untouched, when the
// backup is missing or invalid.
func (s *Store) RestoreBackup(name string) bool {
	backupPath := filepath.Join(s.BackupDir(), name)

	data, err := os.ReadFile(backupPath)
	if err != nil {
		return false
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}

	if _, err := os.Stat(s.FilePath()); err == nil {
		if _, err := s.createBackup(); err != nil {
			return false
		}
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return false
	}
	return atomicWrite(s.FilePath(), data) == nil
}

// createBackup copies the current settings file into the backup directory
// under a timestamped name, then prunes old backups down to Retention.
func (s *Store) createBackup() (string, error) {
	data, err := os.ReadFile(s.FilePath())
	if err != nil {
		return "", &BackupError{Path: s.FilePath(), Err: err}
	}

	if err := os.MkdirAll(s.BackupDir(), 0o755); err != nil {
		return "", &BackupError{Path: s.BackupDir(), Err: err}
	}

	name := fmt.Sprintf("settings_%s.json", s.now().Format(backupTimestampFormat))
	backupPath := filepath.Join(s.BackupDir(), name)
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", &BackupError{Path: backupPath, Err: err}
	}

	s.pruneBackups()
	return backupPath, nil
}

// pruneBackups removes backups beyond Retention, oldest first.
// Individual deletion failures are logged and skipped.
func (s *Store) pruneBackups() {
	if s.Retention <= 0 {
		return
	}
	backups := s.ListBackups()
	for _, backup := range backups[min(s.Retention, len(backups)):] {
		if err := os.Remove(backup.Path); err != nil {
			logger.Debug("could not remove old backup", "path", backup.Path, "error", err)
		}
	}
}

func isBackupName(name string) bool {
	return len(name) > 0 &&
		filepath.Ext(name) == ".json" &&
		len(name) >= len("settings_.json") &&
		name[:len("settings_")] == "settings_"
}

// LoadDocument reads a JSON document, treating a missing file as empty.
// An unreadable or malformed file yields a *ConfigFormatError.
func LoadDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, &ConfigFormatError{Path: path, Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	doc := map[string]any{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigFormatError{Path: path, Err: err}
	}
	return doc, nil
}

// WriteDocument serializes a document (2-space indent, sorted keys,
// trailing newline) and writes it atomically, creating parent directories.
func WriteDocument(path string, doc map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}

	data, err := marshalDocument(doc)
	if err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}

	if err := atomicWrite(path, data); err != nil {
		return &ConfigWriteError{Path: path, Err: err}
	}
	return nil
}

// marshalDocument renders a document in the persisted form. Map keys are
// sorted by encoding/json; HTML escaping is disabled so command strings
// survive round-trips unmangled.
func marshalDocument(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// atomicWrite writes data to a file atomically using temp file + rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	tmpPath = ""
	return nil
}
