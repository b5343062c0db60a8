package settings

import "fmt"

// ConfigFormatError indicates a settings or metadata file exists on disk
// but could not be read or parsed as JSON.
type ConfigFormatError struct {
	Path string
	Err  error
}

func (e *ConfigFormatError) Error() string {
	return fmt.Sprintf("could not load settings from %s: %v", e.Path, e.Err)
}

func (e *ConfigFormatError) Unwrap() error { return e.Err }

// ConfigWriteError indicates a save failed. The previous file version is
// left intact; any backup taken before the write guarantees recoverability.
type ConfigWriteError struct {
	Path string
	Err  error
}

func (e *ConfigWriteError) Error() string {
	return fmt.Sprintf("could not save settings to %s: %v", e.Path, e.Err)
}

func (e *ConfigWriteError) Unwrap() error { return e.Err }

// BackupError indicates the pre-save snapshot could not be created.
// The save that requested the backup is aborted with the live file untouched.
type BackupError struct {
	Path string
	Err  error
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("could not back up settings file %s: %v", e.Path, e.Err)
}

func (e *BackupError) Unwrap() error { return e.Err }
