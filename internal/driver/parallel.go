package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"aera/internal/ast"
	"aera/internal/diag"
	"aera/internal/lexer"
	"aera/internal/project"
	"aera/internal/source"
	"aera/internal/token"
)

// FileResult содержит результат обработки одного файла.
// File равен nil, если файл не удалось загрузить; тогда в Bag лежит IO-диагностика.
type FileResult struct {
	Path    string
	File    *source.File
	Tokens  []token.Token // TokenizeFiles, ParseFiles
	Program *ast.Program  // ParseFiles
	Bag     *diag.Bag     // собственный Bag файла
	Cached  bool          // DiagnoseFiles: диагностики взяты из кэша

	cachedDropped int
}

// Failed reports whether the file has errors (or failed to load).
func (r *FileResult) Failed() bool {
	return r.File == nil || r.Bag.HasErrors()
}

// TokenizeDir токенизирует все *.aera файлы в директории параллельно
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := project.ListSources(dir)
	if err != nil {
		return nil, nil, err
	}
	return TokenizeFiles(ctx, files, opts)
}

// ParseDir парсит все *.aera файлы в директории параллельно
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := project.ListSources(dir)
	if err != nil {
		return nil, nil, err
	}
	return ParseFiles(ctx, files, opts)
}

// TokenizeFiles lexes every file on a bounded worker pool.
// Results keep the order of files.
func TokenizeFiles(ctx context.Context, files []string, opts Options) (*source.FileSet, []FileResult, error) {
	return runFiles(ctx, files, opts, "lex", func(file *source.File, bag *diag.Bag, res *FileResult) {
		emit(opts.Progress, Event{File: res.Path, Stage: StageLex, Status: StatusWorking})
		res.Tokens = lexer.Tokenize(file, bag)
	})
}

// ParseFiles lexes and parses every file on a bounded worker pool.
func ParseFiles(ctx context.Context, files []string, opts Options) (*source.FileSet, []FileResult, error) {
	return runFiles(ctx, files, opts, "parse", func(file *source.File, _ *diag.Bag, res *FileResult) {
		emit(opts.Progress, Event{File: res.Path, Stage: StageParse, Status: StatusWorking})
		single := opts
		single.Timer = nil
		pr := parseFile(file, single)
		res.Tokens, res.Program, res.Bag = pr.Tokens, pr.Program, pr.Bag
	})
}

// DiagnoseFiles is ParseFiles for callers that only need diagnostics:
// with opts.Cache set, unchanged files are answered from the disk cache.
func DiagnoseFiles(ctx context.Context, files []string, opts Options) (*source.FileSet, []FileResult, error) {
	return runFiles(ctx, files, opts, "diagnose", func(file *source.File, _ *diag.Bag, res *FileResult) {
		key := CacheKey(file, opts.MaxDiagnostics)
		var payload DiskPayload
		if hit, err := opts.Cache.Get(key, &payload); err == nil && hit && payload.Path == file.Path {
			emit(opts.Progress, Event{File: res.Path, Stage: StageCache, Status: StatusWorking})
			res.Bag = diag.NewBag()
			for _, d := range payload.Diagnostics {
				res.Bag.Add(d)
			}
			res.Cached = true
			res.cachedDropped = payload.Dropped
			return
		}

		emit(opts.Progress, Event{File: res.Path, Stage: StageParse, Status: StatusWorking})
		single := opts
		single.Timer = nil
		pr := parseFile(file, single)
		res.Bag = pr.Bag
		if opts.Cache != nil {
			// ошибка записи кэша не влияет на результат диагностики
			_ = opts.Cache.Put(key, &DiskPayload{
				Path:        file.Path,
				ContentHash: project.Digest(file.Hash),
				Diagnostics: pr.Bag.Items(),
				Dropped:     pr.Bag.Dropped(),
				Decls:       len(pr.Program.Decls),
			})
		}
	})
}

type fileWork func(file *source.File, bag *diag.Bag, res *FileResult)

// runFiles загружает файлы последовательно (FileID детерминированы),
// затем раздаёт работу воркерам errgroup. Каждый файл пишет только в свой
// слот results и в свой Bag, поэтому мьютекс не нужен.
func runFiles(ctx context.Context, files []string, opts Options, phase string, work fileWork) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSet()
	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return fileSet, results, nil
	}

	doneLoad := opts.track("load")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	for i, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
	}
	doneLoad(fmt.Sprintf("%d files", len(files)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	donePhase := opts.track(phase)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			started := time.Now()
			res := &results[i]
			res.Path = path
			res.Bag = diag.NewLimitedBag(opts.MaxDiagnostics)

			if loadErr := loadErrors[i]; loadErr != nil {
				res.Bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Path:     path,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr, Elapsed: time.Since(started)})
				return nil
			}

			res.File = fileSet.Get(fileIDs[i])
			work(res.File, res.Bag, res)

			status := StatusDone
			if res.Bag.HasErrors() {
				status = StatusError
			}
			emit(opts.Progress, Event{File: path, Status: status, Elapsed: time.Since(started)})
			return nil
		})
	}

	err := g.Wait()
	donePhase(fmt.Sprintf("%d files, %d jobs", len(files), min(jobs, len(files))))
	return fileSet, results, err
}

// Merge collects every file's diagnostics into one sorted slice plus the total dropped count.
func Merge(results []FileResult) ([]diag.Diagnostic, int) {
	var all []diag.Diagnostic
	dropped := 0
	for i := range results {
		if results[i].Bag == nil {
			continue
		}
		all = append(all, results[i].Bag.Items()...)
		dropped += results[i].Bag.Dropped() + results[i].cachedDropped
	}
	return diag.Sorted(all), dropped
}
