// Package jsonfile persists JSON snapshots with atomic replace semantics.
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to the data file path when a corrupt document is
// moved aside.
const BackupSuffix = ".bak"

// WriteAtomic marshals v with 4-space indentation and writes it to path
// through an exclusively created temporary file in the same directory,
// then renames the temporary file over the target in a single step so no
// partial document is ever visible at path. The temporary file is removed
// when any later step fails.
func WriteAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}

	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp_*.json")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)

		return err
	}

	return nil
}

// BackupCorrupt moves path aside to path+BackupSuffix, overwriting any
// previous backup. It falls back to a byte copy when the rename fails and
// swallows every error: a failed backup must not block loading.
func BackupCorrupt(path string) {
	bak := path + BackupSuffix

	if err := os.Rename(path, bak); err == nil {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	_ = os.WriteFile(bak, data, 0o644)
}
