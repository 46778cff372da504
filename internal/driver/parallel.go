package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"smergiel/internal/project"
	"smergiel/internal/trace"
)

// ListSourceFiles возвращает отсортированный список всех *.smr файлов в директории
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == project.SourceExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, &IOError{Path: dir, Err: err}
	}
	// детерминированный порядок
	sort.Strings(files)
	return files, nil
}

// EmitDir compiles every .smr file under dir with up to jobs goroutines.
// Each file gets its own generator; only the cache is shared. Results
// follow ListSourceFiles order. opts.ClassName is ignored: every file
// keeps its own class.
//
// The error is the first load failure or ctx cancellation; per-file
// syntax and semantic errors stay in the results.
func EmitDir(ctx context.Context, dir string, opts EmitOptions, jobs int) ([]*EmitResult, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeStage, "emit-dir")
	defer span.End("")

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	span.WithExtra("files", itoa(len(files)))

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	opts.ClassName = ""

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*EmitResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Emit(gctx, path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
