package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// readSecrets loads a sidecar. A missing file is reported with found=false
// and an empty map, not as an error.
func readSecrets(path string) (map[string]string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read secrets: %w", err)
	}

	secrets := map[string]string{}
	if err := json.Unmarshal(data, &secrets); err != nil {
		return nil, true, fmt.Errorf("%w: secrets: %v", ErrSerialization, err)
	}
	if secrets == nil {
		// a literal "null" sidecar
		secrets = map[string]string{}
	}
	return secrets, true, nil
}

func writeSecrets(path string, secrets map[string]string) error {
	data, err := json.Marshal(secrets)
	if err != nil {
		return fmt.Errorf("%w: secrets: %v", ErrSerialization, err)
	}
	if err := writeFileAtomic(path, data, 0o600); err != nil {
		return fmt.Errorf("write secrets: %w", err)
	}
	return nil
}
