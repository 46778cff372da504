package driver

import (
	"fmt"
	"path/filepath"

	"smergiel/internal/project"
	"smergiel/internal/source"
)

// CheckSourcePath validates the extension of a source path.
func CheckSourcePath(path string) error {
	if filepath.Ext(path) != project.SourceExt {
		return fmt.Errorf("%w: %s", ErrBadExtension, path)
	}
	return nil
}

// loadSource reads path into a fresh FileSet rooted at the file's directory.
func loadSource(path string) (*source.FileSet, *source.File, error) {
	if err := CheckSourcePath(path); err != nil {
		return nil, nil, err
	}
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	id, err := fs.Load(path)
	if err != nil {
		return nil, nil, &IOError{Path: path, Err: err}
	}
	return fs, fs.Get(id), nil
}
