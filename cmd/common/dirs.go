package common

import (
	"os"
	"path/filepath"
)

// DataDir is where config, logs and default data files live (~/.guiinfo).
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".guiinfo")
}
