package driver

import (
	"context"
	"fmt"
	"time"

	"fortio.org/safecast"

	"ctruct/internal/diag"
	"ctruct/internal/lexer"
	"ctruct/internal/observ"
	"ctruct/internal/source"
	"ctruct/internal/token"
	"ctruct/internal/trace"
)

// Options configure single-file and directory tokenization.
type Options struct {
	MaxDiagnostics int
	Raw            bool // LoadBinary вместо LoadText
	NoMerge        bool // без второго прохода
	Cache          *DiskCache
	Timer          *observ.Timer
	Progress       ProgressSink
	Jobs           int      // 0 = GOMAXPROCS
	Extensions     []string // для TokenizeDir, по умолчанию DefaultExtensions

	dedup *diag.DedupReporter // общий на прогон каталога, ставит TokenizeDir
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path      string
	FileID    source.FileID
	Tokens    []token.Token
	Consumed  uint32
	Truncated bool
	Cached    bool
	Bag       *diag.Bag
}

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	FileResult
}

// Tokenize loads one file and tokenizes it. Load failures are returned as
// *source.LoadError; lexical problems end up in Bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	span, ctx := trace.BeginCtx(ctx, trace.ScopeDriver, "tokenize")
	defer span.End(path)

	fs := source.NewFileSet()
	fileID, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
		return nil, err
	}
	file := fs.Get(fileID)
	res := tokenizeFile(ctx, file, opts)
	span.WithExtra("tokens", fmt.Sprint(len(res.Tokens)))

	return &TokenizeResult{
		FileSet:    fs,
		File:       file,
		FileResult: res,
	}, nil
}

func loadFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (source.FileID, error) {
	span, _ := trace.BeginCtx(ctx, trace.ScopePass, "load")
	var idx int
	if opts.Timer != nil {
		idx = opts.Timer.Begin("load")
	}
	emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})

	load := fs.Load
	if opts.Raw {
		load = fs.LoadRaw
	}
	id, err := load(path)

	if opts.Timer != nil {
		opts.Timer.End(idx, path)
	}
	if err != nil {
		span.End(err.Error())
		return 0, err
	}
	span.End(path)
	return id, nil
}

// tokenizeFile lexes an already loaded file, consulting the cache first.
func tokenizeFile(ctx context.Context, file *source.File, opts Options) FileResult {
	start := time.Now()
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := FileResult{Path: file.Path, FileID: file.ID, Bag: bag}
	reporter := opts.dedup.Forward(diag.BagReporter{Bag: bag})
	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusWorking})

	span, _ := trace.BeginCtx(ctx, trace.ScopeFile, "file:"+file.Path)
	defer span.End("")

	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		// FileSet.Add уже проверил длину
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	key := cacheKey(file, opts.NoMerge)

	if opts.Cache != nil {
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			reportCacheFailure(reporter, file, "read", err)
		case ok:
			if toks := payloadToTokens(&payload, key, size); toks != nil {
				res.Tokens, res.Consumed, res.Truncated, res.Cached = toks, payload.Consumed, payload.Truncated, true
				span.WithExtra("cached", "true").WithExtra("tokens", fmt.Sprint(len(toks)))
				emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: StatusCached, Elapsed: time.Since(start)})
				return res
			}
		}
	}

	var idx int
	if opts.Timer != nil {
		idx = opts.Timer.Begin("lex")
	}
	lx := lexer.New(file, lexer.Options{
		Reporter: reporter,
		NoMerge:  opts.NoMerge,
	})
	out := lx.Run()
	res.Tokens, res.Consumed, res.Truncated = out.Tokens, out.Consumed, out.Truncated
	if opts.Timer != nil {
		opts.Timer.End(idx, fmt.Sprintf("%s: %d tokens", file.Path, len(out.Tokens)))
	}
	span.WithExtra("tokens", fmt.Sprint(len(out.Tokens)))
	if out.Truncated {
		span.WithExtra("truncated_at", fmt.Sprint(out.Consumed))
	}

	// кешируем только чистые файлы: диагностики не сериализуются
	if opts.Cache != nil && bag.Len() == 0 && bag.Dropped() == 0 {
		if err := opts.Cache.Put(key, tokensToPayload(key, size, opts.NoMerge, &res)); err != nil {
			reportCacheFailure(reporter, file, "write", err)
		}
	}

	status := StatusDone
	if bag.HasErrors() {
		status = StatusError
	}
	emit(opts.Progress, Event{File: file.Path, Stage: StageLex, Status: status, Elapsed: time.Since(start)})
	return res
}

func reportCacheFailure(r diag.Reporter, file *source.File, op string, err error) {
	sp := source.Span{File: file.ID}
	diag.ReportWarning(r, diag.IOCacheFailed, sp, fmt.Sprintf("token cache %s failed: %v", op, err)).Emit()
}
