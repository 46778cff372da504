package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// SourceExt is the extension of Smergiel source files.
const SourceExt = ".smr"

// ErrNoManifest is returned by LoadManifest when no smergiel.toml exists
// between the start directory and the filesystem root.
var ErrNoManifest = errors.New("no smergiel.toml found\nplease specify the source explicitly, e.g.:\n  smergiel build path/to/main.smr")

// Manifest is a decoded smergiel.toml together with its location.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// BuildConfig mirrors the build command flags; flags win over it.
type BuildConfig struct {
	Main  string `toml:"main"`
	Out   string `toml:"out"`
	Class string `toml:"class"`
	Jar   bool   `toml:"jar"`
	Run   bool   `toml:"run"`
}

// ManifestError marks a malformed manifest.
type ManifestError struct {
	Path string
	Msg  string
	Err  error
}

func (e *ManifestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// LoadManifest finds and decodes the manifest above startDir.
func LoadManifest(startDir string) (*Manifest, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoManifest
	}
	cfg, err := DecodeConfig(manifestPath)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, nil
}

// DecodeConfig reads and validates one manifest file.
func DecodeConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, &ManifestError{Path: path, Msg: "failed to parse TOML", Err: err}
	}
	if !meta.IsDefined("package") {
		return Config{}, &ManifestError{Path: path, Msg: "missing [package]"}
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, &ManifestError{Path: path, Msg: "missing [package].name"}
	}
	if !meta.IsDefined("build", "main") || strings.TrimSpace(cfg.Build.Main) == "" {
		return Config{}, &ManifestError{Path: path, Msg: "missing [build].main"}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, &ManifestError{Path: path, Msg: fmt.Sprintf("unknown key %q", undecoded[0].String())}
	}
	return cfg, nil
}

// MainPath returns [build].main resolved against the manifest directory.
func (m *Manifest) MainPath() string {
	return m.resolve(m.Config.Build.Main)
}

// OutDir returns [build].out resolved against the manifest directory,
// or "" when unset.
func (m *Manifest) OutDir() string {
	if strings.TrimSpace(m.Config.Build.Out) == "" {
		return ""
	}
	return m.resolve(m.Config.Build.Out)
}

func (m *Manifest) resolve(rel string) string {
	rel = filepath.FromSlash(strings.TrimSpace(rel))
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(m.Root, rel)
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

const helloSource = `read x.
y = x * 2.
write y.
`

// Scaffold writes smergiel.toml and main.smr into dir. Existing files
// are never overwritten.
func Scaffold(dir, name string) ([]string, error) {
	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		name = filepath.Base(abs)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	manifest, err := Encode(Config{
		Package: PackageConfig{Name: name},
		Build:   BuildConfig{Main: "main" + SourceExt},
	})
	if err != nil {
		return nil, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{ManifestName, manifest},
		{"main" + SourceExt, []byte(helloSource)},
	}
	created := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil {
			return created, fmt.Errorf("%s already exists", path)
		}
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return created, fmt.Errorf("failed to write %s: %w", path, err)
		}
		created = append(created, path)
	}
	return created, nil
}
