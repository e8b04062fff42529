package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"cisniff/internal/diag"
	"cisniff/internal/lexer"
	"cisniff/internal/sniff"
	"cisniff/internal/source"
)

// checkParallel загружает файлы последовательно, затем проверяет их параллельно.
// The FileSet is complete before workers start, so they only read it.
func checkParallel(ctx context.Context, paths []string, rules []sniff.Rule, opts Options) (*Result, error) {
	fileSet := source.NewFileSetWithBase(opts.BaseDir)
	dispatcher := sniff.NewDispatcher(rules)
	maxDiagnostics := opts.maxDiagnostics()
	fingerprint := RulesetFingerprint(rules, opts.Config.Rules.Options, maxDiagnostics)

	idx := opts.Timer.Begin("load")
	fileIDs := make([]source.FileID, len(paths))
	loadErrors := make(map[int]error)
	for i, path := range paths {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// пустой виртуальный файл, чтобы диагностика указывала на путь
			loadErrors[i] = err
			fileID = fileSet.Add(path, nil, source.FileVirtual)
		}
		fileIDs[i] = fileID
	}
	opts.Timer.End(idx, fmt.Sprintf("%d files", len(paths)))
	for _, path := range paths {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	if len(paths) == 0 {
		return &Result{FileSet: fileSet}, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(paths))

	idx = opts.Timer.Begin("check")
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			results[i] = FileResult{Path: path, FileID: fileIDs[i], Bag: bag}
			emit(opts.Progress, Event{File: path, Status: StatusWorking})
			defer func() { emit(opts.Progress, finishedEvent(results[i])) }()

			if loadErr, hadError := loadErrors[i]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: fileIDs[i]},
					"failed to load file: "+loadErr.Error()))
				return nil
			}

			file := fileSet.Get(fileIDs[i])
			key := CacheKey(file, fingerprint)
			if opts.Cache != nil {
				var payload DiskPayload
				hit, err := opts.Cache.Get(key, &payload)
				switch {
				case err != nil:
					log.Debug("cache read failed", "file", path, "err", err)
				case hit && payload.Schema == diskCacheSchemaVersion:
					payload.restore(bag, file.ID)
					results[i].Cached = true
					log.Debug("cache hit", "file", path)
					return nil
				}
			}

			adapter := &lexer.ReporterAdapter{Bag: bag}
			start := time.Now()
			toks := lexer.Tokenize(file, lexer.Options{Reporter: adapter.Reporter()})
			opts.Timer.Add("tokenize", time.Since(start))

			start = time.Now()
			dispatcher.Run(file, toks, diag.BagReporter{Bag: bag})
			opts.Timer.Add("rules", time.Since(start))

			if opts.Cache != nil {
				if err := opts.Cache.Put(key, newPayload(bag)); err != nil {
					bag.Add(diag.NewWarning(diag.IOCacheError, source.Span{File: file.ID},
						"failed to write result cache: "+err.Error()))
				}
			}
			return nil
		})
	}

	err := g.Wait()
	cached := 0
	for _, r := range results {
		if r.Cached {
			cached++
		}
	}
	opts.Timer.End(idx, fmt.Sprintf("%d files, %d cached", len(paths), cached))
	if err != nil {
		return nil, err
	}
	return &Result{FileSet: fileSet, Files: results}, nil
}
