// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/filesystem/perms"
)

// ReadJSON reads a JSON file and unmarshals it into the provided interface.
// A missing file is reported with an error matching os.ErrNotExist.
func ReadJSON(path string, v interface{}) error {
	contentBytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(contentBytes, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}

	return nil
}

// WriteJSON writes v as indented JSON, creating the parent directory
func WriteJSON(path string, v interface{}, perm os.FileMode) error {
	contentBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), perms.ReadWriteExecute); err != nil {
		return err
	}
	if err := os.WriteFile(path, contentBytes, perm); err != nil {
		return fmt.Errorf("failed to write JSON to %s: %w", path, err)
	}

	return nil
}
