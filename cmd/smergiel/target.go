package main

import (
	"errors"
	"fmt"
	"os"

	"smergiel/internal/driver"
	"smergiel/internal/project"
)

// buildTarget is what `smergiel build` compiles, after merging the
// positional arguments with smergiel.toml.
type buildTarget struct {
	path      string
	baseDir   string
	outDir    string
	className string
	jar       bool
	run       bool
	fromFile  bool // path came from the manifest
}

// splitLegacyArgs separates the classic mode words ("jar", "run") that
// precede the source path. A lone mode word with no matching file is a
// mode for the manifest target.
func splitLegacyArgs(args []string) (modes map[string]bool, path string, err error) {
	modes = make(map[string]bool)
	if len(args) == 0 {
		return modes, "", nil
	}
	last := len(args) - 1
	for _, arg := range args[:last] {
		if !isModeWord(arg) {
			return nil, "", fmt.Errorf("unknown build mode %q (expected jar or run)", arg)
		}
		modes[arg] = true
	}
	path = args[last]
	if isModeWord(path) {
		if _, statErr := os.Stat(path); statErr != nil {
			modes[path] = true
			path = ""
		}
	}
	return modes, path, nil
}

func isModeWord(s string) bool {
	return s == "jar" || s == "run"
}

// resolveBuildTarget validates an explicit path or falls back to the
// manifest found above the working directory.
func resolveBuildTarget(path string) (buildTarget, error) {
	if path != "" {
		if err := checkInputPath(path); err != nil {
			return buildTarget{}, err
		}
		return buildTarget{path: path}, nil
	}

	manifest, err := project.LoadManifest(".")
	if errors.Is(err, project.ErrNoManifest) {
		return buildTarget{}, errMissingPath
	}
	if err != nil {
		return buildTarget{}, err
	}
	target := buildTarget{
		path:      manifest.MainPath(),
		baseDir:   manifest.Root,
		outDir:    manifest.OutDir(),
		className: manifest.Config.Build.Class,
		jar:       manifest.Config.Build.Jar,
		run:       manifest.Config.Build.Run,
		fromFile:  true,
	}
	if err := checkInputPath(target.path); err != nil {
		return buildTarget{}, fmt.Errorf("%s: [build].main: %w", manifest.Path, err)
	}
	return target, nil
}

// checkInputPath accepts an existing directory or a path ending in .smr.
// A missing .smr file is reported later as an I/O error.
func checkInputPath(path string) error {
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		return nil
	}
	return driver.CheckSourcePath(path)
}

// checkSourceFile is checkInputPath for commands that take exactly one file.
func checkSourceFile(path string) error {
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		return fmt.Errorf("%s is a directory; expected a %s file", path, project.SourceExt)
	}
	return driver.CheckSourcePath(path)
}

// openEmitCache returns the emission cache unless disabled. A disk cache
// that cannot be opened degrades to an in-memory one.
func openEmitCache(disabled bool) *driver.EmitCache {
	if disabled {
		return nil
	}
	disk, err := driver.OpenDiskCache("smergiel")
	if err != nil {
		return driver.NewEmitCache(nil)
	}
	return driver.NewEmitCache(disk)
}
