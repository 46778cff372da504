package driver

import (
	"context"
	"time"

	"smergiel/internal/ast"
	"smergiel/internal/diag"
	"smergiel/internal/javagen"
	"smergiel/internal/observ"
	"smergiel/internal/source"
	"smergiel/internal/symbols"
	"smergiel/internal/trace"
)

// EmitOptions configures Emit and EmitDir.
type EmitOptions struct {
	// ClassName overrides the name derived from the file name.
	ClassName      string
	ReportAll      bool
	MaxDiagnostics int
	// Cache is consulted before parsing; nil disables caching.
	Cache    *EmitCache
	Observer PhaseObserver
	// Timings appends an ObsTimings diagnostic to the result bag.
	Timings bool
}

// EmitResult is the outcome of compiling one file to Java.
type EmitResult struct {
	Path      string
	ClassName string
	FileSet   *source.FileSet
	File      *source.File
	// Program and Table are nil when the result came from the cache.
	Program    *ast.Program
	Table      *symbols.Table
	Java       string
	Unresolved []*javagen.UnresolvedError
	Bag        *diag.Bag
	// Err is the first semantic error (usually an *javagen.UnresolvedError).
	Err       error
	FromCache bool
	Timing    observ.Report
}

// Failed reports whether the file produced errors of any kind.
func (r *EmitResult) Failed() bool {
	return r.Err != nil || (r.Bag != nil && r.Bag.HasErrors())
}

// Emit compiles one .smr file to Java. The returned error covers load
// failures only; syntax and semantic problems are in the result.
func Emit(ctx context.Context, path string, opts EmitOptions) (*EmitResult, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeFile, "file:"+path)
	defer span.End("")

	timer := observ.NewTimer()
	doneLoad := timer.Track("load")
	endLoad := opts.Observer.start(path, "load")
	fs, file, err := loadSource(path)
	endLoad()
	doneLoad("")
	if err != nil {
		return nil, err
	}

	className := opts.ClassName
	if className == "" {
		className = javagen.ClassNameFromPath(path)
	}
	res := &EmitResult{
		Path:      path,
		ClassName: className,
		FileSet:   fs,
		File:      file,
		Bag:       diag.NewBag(opts.MaxDiagnostics),
	}
	defer func() {
		res.Timing = timer.Report()
		if opts.Timings {
			appendTimingDiagnostic(res.Bag, path, res.Timing)
		}
	}()

	key := emitKey(file, className, opts.ReportAll)
	if cached, ok := opts.Cache.Get(key); ok {
		timer.Record("cache", 0, "hit")
		trace.Point(trace.FromContext(ctx), trace.ScopeStage, "cache", "hit", trace.CurrentSpanID(ctx))
		res.Java = cached.Java
		res.FromCache = true
		return res, nil
	}

	doneParse := timer.Track("parse")
	endParse := opts.Observer.start(path, "parse")
	res.Program = parseFile(ctx, file, res.Bag, opts.MaxDiagnostics)
	endParse()
	doneParse("")
	if res.Bag.HasErrors() {
		span.WithExtra("result", "syntax errors")
		return res, nil
	}

	doneEmit := timer.Track("emit")
	endEmit := opts.Observer.start(path, "emit")
	res.Err = generate(ctx, res, opts)
	endEmit()
	doneEmit(className)

	if !res.Failed() {
		// кэш не должен ронять сборку
		_ = opts.Cache.Put(key, DiskPayload{
			ClassName: className,
			Source:    path,
			Java:      res.Java,
			Created:   time.Now(),
		})
	}
	return res, nil
}

func generate(ctx context.Context, res *EmitResult, opts EmitOptions) error {
	_, span := trace.StartSpan(ctx, trace.ScopeStage, "emit")
	defer span.End("")

	gen, err := javagen.Generate(res.Program, res.FileSet, javagen.Options{
		ClassName: res.ClassName,
		ReportAll: opts.ReportAll,
		Reporter:  diag.BagReporter{Bag: res.Bag},
	})
	res.Java = gen.Java
	res.Table = gen.Table
	res.Unresolved = gen.Unresolved
	decls, uses := gen.Table.Len()
	span.WithExtra("decls", itoa(decls)).WithExtra("uses", itoa(uses))
	return err
}
