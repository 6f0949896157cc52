package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile writes a rendered document, creating parent directories.
func WriteFile(path, content string) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// output path next to the input: movie.srt -> movie.<suffix>.srt
func DerivedPath(inputPath, suffix string) string {
	baseName := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	ext := GetExtensionForFormat(FormatSRT)
	if suffix == "" {
		return baseName + ext
	}
	return fmt.Sprintf("%s.%s%s", baseName, suffix, ext)
}
