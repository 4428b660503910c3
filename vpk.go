package workshop

import (
	"os"
	"path/filepath"
	"strings"
)

// VPKsInDir returns the paths of all *.vpk files directly inside dir.
// Source-engine workshop packages ship as .vpk archives; scanning a game's
// addons directory pairs with GetPublishedFileDetails to reconcile local
// files against their workshop entries. The scan is not recursive.
func VPKsInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".vpk") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
