package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ctruct/internal/diag"
	"ctruct/internal/source"
	"ctruct/internal/trace"
)

// DefaultExtensions are the C source suffixes tokenized in directory mode.
var DefaultExtensions = []string{".c", ".h"}

// ListSources возвращает отсортированный список файлов с нужными расширениями.
func ListSources(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// скрытые каталоги (.git, .cache) пропускаем, корень нет
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(exts, strings.ToLower(filepath.Ext(path))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}

	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// TokenizeDir токенизирует все исходники в директории параллельно.
// Результаты идут в порядке ListSources; ошибки загрузки становятся
// диагностиками IO4001, а не ошибкой вызова.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	span, ctx := trace.BeginCtx(ctx, trace.ScopeDriver, "tokenize-dir")
	defer span.End(dir)

	files, err := ListSources(dir, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}
	span.WithExtra("files", fmt.Sprint(len(files)))

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Предзагрузка последовательно: FileID совпадает с индексом в files
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	for i, path := range files {
		id, err := loadFile(ctx, fileSet, path, opts)
		if err != nil {
			loadErrors[i] = err
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "load-failed", path)
			id = fileSet.AddVirtual(path, nil)
		}
		fileIDs[i] = id
	}

	// сбой кеша одинаков для всех файлов: сообщаем один раз
	opts.dedup = diag.NewDedupReporter(nil, diag.IOCacheFailed)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			file := fileSet.Get(fileIDs[i])
			if loadErr := loadErrors[i]; loadErr != nil {
				results[i] = loadFailureResult(file, loadErr, opts.MaxDiagnostics)
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}
			results[i] = tokenizeFile(gctx, file, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func loadFailureResult(file *source.File, loadErr error, maxDiagnostics int) FileResult {
	bag := diag.NewBag(maxDiagnostics)
	msg := "failed to load file: " + loadErr.Error()
	var le *source.LoadError
	if errors.As(loadErr, &le) {
		msg = le.Error()
	}
	bag.Add(diag.NewError(diag.IOLoadFailure, source.Span{File: file.ID}, msg))
	return FileResult{Path: file.Path, FileID: file.ID, Bag: bag}
}

// Summary aggregates a directory run.
type Summary struct {
	Files     int
	Tokens    int
	Cached    int
	Truncated int
	Errors    int
	Elapsed   time.Duration
}

// Summarize folds results into a Summary.
func Summarize(results []FileResult, elapsed time.Duration) Summary {
	s := Summary{Files: len(results), Elapsed: elapsed}
	for i := range results {
		r := &results[i]
		s.Tokens += len(r.Tokens)
		if r.Cached {
			s.Cached++
		}
		if r.Truncated {
			s.Truncated++
		}
		if r.Bag != nil && r.Bag.HasErrors() {
			s.Errors++
		}
	}
	return s
}
