package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a decoded aera.toml together with where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the aera.toml layout.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name    string `toml:"name"`
	Version string `toml:"version,omitempty"`
}

// BuildConfig: настройки фронтенда; флаги CLI имеют приоритет.
type BuildConfig struct {
	// Sources: файлы или каталоги относительно корня проекта.
	Sources        []string `toml:"sources,omitempty"`
	MaxDiagnostics int      `toml:"max_diagnostics,omitempty"`
	Jobs           int      `toml:"jobs,omitempty"`
	// Cache: каталог дискового кэша диагностик; пусто: кэш выключен.
	Cache string `toml:"cache,omitempty"`
}

// Default returns the configuration written by `aera init`.
func Default(name string) Config {
	return Config{
		Package: PackageConfig{Name: name, Version: "0.1.0"},
		Build: BuildConfig{
			Sources:        []string{"."},
			MaxDiagnostics: 100,
			Cache:          ".aera-cache",
		},
	}
}

// LoadConfig decodes and validates one manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if cfg.Build.MaxDiagnostics < 0 {
		return Config{}, fmt.Errorf("%s: [build].max_diagnostics must not be negative", path)
	}
	if cfg.Build.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [build].jobs must not be negative", path)
	}
	if len(cfg.Build.Sources) == 0 {
		cfg.Build.Sources = []string{"."}
	}
	return cfg, nil
}

// Load finds aera.toml above startDir and decodes it.
// ok is false when no manifest exists; that is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// Encode renders cfg as TOML with a header comment.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# aera project manifest\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// CachePath returns the absolute cache directory, or "" when caching is off.
func (m *Manifest) CachePath() string {
	if m == nil || strings.TrimSpace(m.Config.Build.Cache) == "" {
		return ""
	}
	if filepath.IsAbs(m.Config.Build.Cache) {
		return m.Config.Build.Cache
	}
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Cache))
}
