package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/553059210/Exam-gen/internal/model"
	"github.com/553059210/Exam-gen/internal/worker"
)

// Loader walks an input directory and parses every recognized document.
// Files parse concurrently through a worker pool; article order follows
// the sorted directory listing regardless of completion order.
type Loader struct {
	sources []Source
	pool    *worker.Pool
	verbose bool
}

// NewLoader creates a loader with the standard format handlers
func NewLoader(parseWorkers int, verbose bool) *Loader {
	return &Loader{
		sources: []Source{
			NewDocxSource(),
			NewHTMLSource(),
			NewTextSource(),
		},
		pool:    worker.NewPool(parseWorkers),
		verbose: verbose,
	}
}

// parseJob parses one file; the index preserves directory order
type parseJob struct {
	index  int
	path   string
	source Source
}

// parseResult carries the articles (or failure) of one file
type parseResult struct {
	index    int
	path     string
	articles []model.Article
	err      error
}

func (r parseResult) Err() error { return r.err }

func (j parseJob) Execute(_ context.Context) worker.Result {
	articles, err := j.source.Parse(j.path)
	return parseResult{index: j.index, path: j.path, articles: articles, err: err}
}

// LoadDirectory parses every recognized document in dir. Unreadable
// files are logged and skipped; an unreadable or empty directory yields
// an empty slice, never an error.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) []model.Article {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot read input directory %s: %v\n", dir, err)
		return nil
	}

	var jobs []worker.Job
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		for _, src := range l.sources {
			if src.CanHandle(path) {
				jobs = append(jobs, parseJob{index: len(jobs), path: path, source: src})
				break
			}
		}
	}
	if len(jobs) == 0 {
		return nil
	}

	results := l.pool.Run(ctx, jobs)
	parsed := make([]parseResult, 0, len(results))
	for _, res := range results {
		pr := res.(parseResult)
		if pr.err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", pr.path, pr.err)
			continue
		}
		parsed = append(parsed, pr)
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].index < parsed[j].index })

	var articles []model.Article
	for _, pr := range parsed {
		if l.verbose {
			fmt.Fprintf(os.Stderr, "Parsed %d articles from %s\n", len(pr.articles), pr.path)
		}
		articles = append(articles, pr.articles...)
	}
	return articles
}
