package store

import (
	"os"
	"path/filepath"
	"strings"
)

// tempPrefix marks in-flight writes. Files with it are never listed and are
// removed by the temp sweeper once they are old enough.
const tempPrefix = ".tmp-"

// IsTempFile reports whether name is an in-flight or abandoned write.
func IsTempFile(name string) bool {
	return strings.HasPrefix(name, tempPrefix)
}

// writeFileAtomic replaces path with data. The bytes go to a temp file in
// the same directory which is fsynced and renamed over path, so readers see
// either the old or the new content.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempPrefix+"*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	success = true
	return nil
}
