package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes rendered input to path, creating its directory if it
// doesn't exist. The file always ends with a newline.
func WriteFile(path, text string) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	err = os.WriteFile(path, []byte(text), filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
