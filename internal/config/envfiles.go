package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFiles lists .env files in priority order: the first file to define a
// variable wins, and variables already in the environment beat all files.
//
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. <config dir>/env
func EnvFiles() []string {
	files := []string{".env.local", ".env"}
	if dir := Dir(); dir != "" {
		files = append(files, filepath.Join(dir, "env"))
	}
	return files
}

// LoadEnvFiles loads each file that exists without overriding variables
// that are already set.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading env file %s: %w", path, err)
		}
	}
	return nil
}
