package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "updeck"

// Workspace holds the local paths updeck writes to
type Workspace struct {
	ConfigPath  string
	CachePath   string
	GalleryPath string
}

// New creates a Workspace with XDG-compliant paths
func New() (*Workspace, error) {
	configPath, configErr := getConfigPath()
	cachePath, cacheErr := getCacheRoot()
	if configErr != nil {
		return nil, fmt.Errorf("failed to determine config path: %w", configErr)
	}
	if cacheErr != nil {
		return nil, fmt.Errorf("failed to determine cache path: %w", cacheErr)
	}

	return &Workspace{
		ConfigPath:  configPath,
		CachePath:   cachePath,
		GalleryPath: filepath.Join(cachePath, "gallery"),
	}, nil
}

// getCacheRoot follows XDG on Unix and uses LocalAppData on Windows
func getCacheRoot() (string, error) {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, appName), nil
	}

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return filepath.Join(localAppData, appName, "cache"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".cache", appName), nil
}

func getConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, appName, "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// Initialize creates the cache directories if they don't exist
func (w *Workspace) Initialize() error {
	for _, dir := range []string{w.CachePath, w.GalleryPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetCachePath returns the full path for a cached file
func (w *Workspace) GetCachePath(filename string) string {
	return filepath.Join(w.CachePath, filename)
}

// CleanGallery removes every exported gallery file
func (w *Workspace) CleanGallery() error {
	entries, err := os.ReadDir(w.GalleryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read gallery directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(w.GalleryPath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}
