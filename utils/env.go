package utils

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file if present.
// Already-set variables win. With no paths it tries the CWD, then the
// project root (the nearest parent holding go.mod).
func LoadDotEnv(paths ...string) error {
	if len(paths) > 0 {
		return godotenv.Load(paths...)
	}
	// try CWD first
	if err := godotenv.Load(); err == nil {
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	root, err := FindProjectRoot(wd)
	if err != nil {
		return err
	}
	envPath := filepath.Join(root, ".env")
	if _, err := os.Stat(envPath); err != nil {
		return os.ErrNotExist
	}
	return godotenv.Load(envPath)
}

// FindProjectRoot walks up from dir to the first directory containing go.mod.
func FindProjectRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("project root not found: no go.mod above " + dir)
		}
		dir = parent
	}
}

// GetEnv returns the environment variable value if set, or the default.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
