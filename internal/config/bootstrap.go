package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	return ensureUserFile(dataDir, defaultPath, "config.yml")
}

func EnsureUserSeeds(dataDir string, defaultPath string) (string, error) {
	return ensureUserFile(dataDir, defaultPath, "seeds.yml")
}

// SeedsPath resolves sources.seeds_file against the data dir. Absolute
// paths are taken as-is so operators can point at a dataset outside it.
func SeedsPath(dataDir string, cfg Config) string {
	p := cfg.Sources.SeedsFile
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dataDir, p)
}

func ensureUserFile(dataDir, defaultPath, name string) (string, error) {
	userPath := filepath.Join(dataDir, name)

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	// Copy defaultPath -> userPath
	src, err := os.Open(defaultPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}
