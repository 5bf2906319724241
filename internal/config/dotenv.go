package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

var dotEnvCandidates = []string{
	".env.local",
	".env",
}

// LoadDotEnv loads .env files into the process environment and returns the
// paths it loaded. Variables already set in the environment win.
//
// When explicitPath is set only that file is considered. Otherwise the
// search starts in startDir and walks up to the filesystem root, stopping at
// the first directory holding any candidate file.
func LoadDotEnv(explicitPath, startDir string) []string {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err == nil {
			if err := godotenv.Load(explicitPath); err == nil {
				return []string{explicitPath}
			}
		}
		return nil
	}

	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		startDir = wd
	}

	var loaded []string
	for dir := startDir; ; {
		for _, name := range dotEnvCandidates {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := godotenv.Load(p); err == nil {
				loaded = append(loaded, p)
			}
		}
		if len(loaded) > 0 {
			return loaded
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return loaded
}

// FromProcess loads .env files unless DISABLE_DOTENV is set, then parses the
// process environment. It returns the .env paths that were loaded.
func FromProcess() (*Config, []string, error) {
	var loaded []string
	if os.Getenv("DISABLE_DOTENV") == "" {
		loaded = LoadDotEnv(os.Getenv("DOTENV_PATH"), "")
	}
	cfg, err := Load(os.Environ())
	if err != nil {
		return nil, loaded, err
	}
	return cfg, loaded, nil
}
