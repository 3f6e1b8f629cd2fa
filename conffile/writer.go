package conffile

import (
	"fmt"
	"os"
	"path/filepath"

	"gfxmanager/models"

	"github.com/google/uuid"
)

// Paths lists the files a write produced. Skipped formats are empty.
type Paths struct {
	DXVK     string
	VkBasalt string
}

// Writer places generated config files next to an executable
type Writer struct {
	DXVK     bool
	VkBasalt bool
}

// NewWriter creates a writer emitting both formats
func NewWriter() *Writer {
	return &Writer{DXVK: true, VkBasalt: true}
}

// Write renders rec and writes the enabled formats into the folder of appPath
func (w *Writer) Write(appPath string, rec models.SettingsRecord) (Paths, error) {
	dir := filepath.Dir(appPath)
	var out Paths

	if w.DXVK {
		path := filepath.Join(dir, DXVKFileName)
		if err := writeFile(path, DXVK(rec)); err != nil {
			return out, err
		}
		out.DXVK = path
	}

	if w.VkBasalt {
		path := filepath.Join(dir, VkBasaltFileName)
		if err := writeFile(path, VkBasalt(rec)); err != nil {
			return out, err
		}
		out.VkBasalt = path
	}

	return out, nil
}

// writeFile replaces path with data through a temp file in the same folder
func writeFile(path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
