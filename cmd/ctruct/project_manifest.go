package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const manifestName = "ctruct.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
	meta   toml.MetaData
}

type projectConfig struct {
	Tokenize tokenizeConfig `toml:"tokenize"`
	Cache    cacheConfig    `toml:"cache"`
}

type tokenizeConfig struct {
	Format        string   `toml:"format"`
	Jobs          int      `toml:"jobs"`
	Extensions    []string `toml:"extensions"`
	MergePrefixes bool     `toml:"merge_prefixes"`
}

type cacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// defaultProjectConfig соответствует поведению без ctruct.toml.
func defaultProjectConfig() projectConfig {
	return projectConfig{
		Tokenize: tokenizeConfig{
			Format:        "pretty",
			MergePrefixes: true,
		},
	}
}

// findManifest ищет ctruct.toml от startDir вверх до корня.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest находит и читает манифест для target (файла или каталога).
func loadProjectManifest(target string) (*projectManifest, bool, error) {
	startDir := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		startDir = filepath.Dir(target)
	}
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, meta, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
		meta:   meta,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, toml.MetaData, error) {
	cfg := defaultProjectConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return projectConfig{}, meta, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("tokenize", "format") {
		if _, err := parseOutputFormat(cfg.Tokenize.Format); err != nil {
			return projectConfig{}, meta, fmt.Errorf("%s: [tokenize].format: %w", path, err)
		}
	}
	if cfg.Tokenize.Jobs < 0 {
		return projectConfig{}, meta, fmt.Errorf("%s: [tokenize].jobs must be >= 0", path)
	}
	for _, ext := range cfg.Tokenize.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return projectConfig{}, meta, fmt.Errorf("%s: [tokenize].extensions: %q must start with '.'", path, ext)
		}
	}
	return cfg, meta, nil
}

// cacheDir разрешает [cache].dir относительно корня проекта.
func (m *projectManifest) cacheDir() string {
	dir := strings.TrimSpace(m.Config.Cache.Dir)
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(m.Root, filepath.FromSlash(dir))
}

// cacheEnabledSet сообщает, задан ли [cache].enabled явно.
func (m *projectManifest) cacheEnabledSet() bool {
	return m != nil && m.meta.IsDefined("cache", "enabled")
}
