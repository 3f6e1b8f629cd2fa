// Package steam updates the launch options of non-Steam shortcuts so vkBasalt is loaded.
package steam

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gfxmanager/models"

	"github.com/google/uuid"
)

var (
	// ErrSteamNotFound indicates no Steam installation with user data was found
	ErrSteamNotFound = errors.New("Steam installation not found")

	// ErrShortcutNotFound indicates no shortcut points at the executable
	ErrShortcutNotFound = errors.New("no Steam shortcut for executable")
)

// Manager handles Steam integration operations
type Manager struct {
	root   string
	logger *log.Logger
}

// NewManager creates a Steam manager. An empty root searches the usual install locations.
func NewManager(root string) *Manager {
	return &Manager{
		root:   root,
		logger: log.New(io.Discard, "", 0),
	}
}

// SetLogger sets where progress messages go
func (m *Manager) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// ShortcutsFile returns the shortcuts.vdf of the most recently active Steam user
func (m *Manager) ShortcutsFile() (string, error) {
	root := m.root
	if root == "" {
		var err error
		if root, err = findSteamPath(); err != nil {
			return "", err
		}
	}

	userDataPath, err := findUserDataPath(root)
	if err != nil {
		return "", err
	}
	return filepath.Join(userDataPath, "config", "shortcuts.vdf"), nil
}

// ApplyLaunchOptions adds the vkBasalt variable to the shortcut launching app.
// It reports whether shortcuts.vdf was changed.
func (m *Manager) ApplyLaunchOptions(app models.Application) (bool, error) {
	path, err := m.ShortcutsFile()
	if err != nil {
		return false, err
	}

	shortcuts, err := readShortcuts(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	sc := findShortcut(shortcuts, app.AppPath)
	if sc == nil {
		return false, fmt.Errorf("%s: %w", app.AppPath, ErrShortcutNotFound)
	}

	merged := MergeLaunchOptions(sc.LaunchOptions)
	if merged == sc.LaunchOptions {
		return false, nil
	}
	sc.LaunchOptions = merged

	if err := writeShortcuts(path, shortcuts); err != nil {
		return false, err
	}
	m.logger.Printf("Updated Steam launch options for %s: %s", sc.AppName, merged)
	return true, nil
}

// AddShortcut adds app to Steam as a non-Steam game with vkBasalt enabled.
// An existing shortcut for the executable keeps its settings and gains the launch variable.
func (m *Manager) AddShortcut(app models.Application) (uint32, error) {
	path, err := m.ShortcutsFile()
	if err != nil {
		return 0, err
	}

	shortcuts, err := readShortcuts(path)
	if err != nil && !os.IsNotExist(err) {
		return 0, err
	}

	sc := findShortcut(shortcuts, app.AppPath)
	if sc == nil {
		sc = &Shortcut{
			AppID:              AppID(app.AppName, app.AppPath),
			AppName:            app.AppName,
			Exe:                quote(app.AppPath),
			StartDir:           quote(app.Dir()),
			AllowDesktopConfig: true,
			AllowOverlay:       true,
			Tags:               []string{},
		}
		shortcuts = append(shortcuts, sc)
		m.logger.Printf("Adding new Steam shortcut for %s (AppID: %d)", app.AppName, sc.AppID)
	} else {
		m.logger.Printf("Updating existing Steam shortcut for %s (AppID: %d)", app.AppName, sc.AppID)
	}
	sc.LaunchOptions = MergeLaunchOptions(sc.LaunchOptions)

	if err := writeShortcuts(path, shortcuts); err != nil {
		return 0, err
	}
	return sc.AppID, nil
}

// AppID returns the shortcut id Steam derives from a name and executable
func AppID(name, exe string) uint32 {
	input := normalizeName(name) + normalizePath(exe) + "\x00"
	return crc32.ChecksumIEEE([]byte(input)) | 0x80000000
}

// ShortcutURL returns the steam:// URL launching a shortcut
func ShortcutURL(appID uint32) string {
	return fmt.Sprintf("steam://rungameid/%d", appID)
}

func findShortcut(shortcuts []*Shortcut, exe string) *Shortcut {
	want := normalizePath(exe)
	for _, sc := range shortcuts {
		if normalizePath(sc.Exe) == want {
			return sc
		}
	}
	return nil
}

func readShortcuts(path string) ([]*Shortcut, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	shortcuts, err := DecodeShortcuts(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return shortcuts, nil
}

func writeShortcuts(path string, shortcuts []*Shortcut) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Steam reads this file while running, so never leave it half written
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, EncodeShortcuts(shortcuts), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// findSteamPath attempts to find the Steam installation directory
func findSteamPath() (string, error) {
	homeDir, _ := os.UserHomeDir()

	var possiblePaths []string
	switch runtime.GOOS {
	case "windows":
		possiblePaths = []string{
			"C:\\Program Files (x86)\\Steam",
			filepath.Join(os.Getenv("PROGRAMFILES(X86)"), "Steam"),
		}
	default:
		possiblePaths = []string{
			filepath.Join(homeDir, ".steam", "steam"),
			filepath.Join(homeDir, ".local", "share", "Steam"),
			filepath.Join(homeDir, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
		}
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrSteamNotFound
}

// findUserDataPath picks the user whose config folder changed most recently
func findUserDataPath(steamPath string) (string, error) {
	userDataDir := filepath.Join(steamPath, "userdata")

	entries, err := os.ReadDir(userDataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", userDataDir, ErrSteamNotFound)
		}
		return "", fmt.Errorf("failed to read userdata directory: %w", err)
	}

	var latestUserDir string
	var latestModTime int64
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		userPath := filepath.Join(userDataDir, entry.Name())
		stat, err := os.Stat(filepath.Join(userPath, "config"))
		if err != nil {
			continue
		}
		if latestUserDir == "" || stat.ModTime().Unix() > latestModTime {
			latestModTime = stat.ModTime().Unix()
			latestUserDir = userPath
		}
	}

	if latestUserDir == "" {
		return "", fmt.Errorf("no Steam user in %s: %w", userDataDir, ErrSteamNotFound)
	}
	return latestUserDir, nil
}

func quote(path string) string {
	return `"` + path + `"`
}

// normalizeName normalizes a name for AppID generation
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// normalizePath normalizes an executable path for comparison
func normalizePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if path == "" {
		return path
	}
	return strings.ToLower(filepath.Clean(path))
}
