package walker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/vburojevic/logstat/internal/aggregator"
	"github.com/vburojevic/logstat/internal/domain"
)

// DefaultExtension selects which files are treated as access logs.
const DefaultExtension = ".log"

// ErrNoResults means the walk finished without a single summary: no matching
// files, or every matching file was empty, unreadable, or unparsable.
var ErrNoResults = errors.New("no log files produced statistics")

// ArtifactSink persists a summary as soon as it is produced
type ArtifactSink interface {
	Write(s *domain.FileSummary) (string, error)
}

// Analyzer turns one file into an outcome; *aggregator.Aggregator satisfies it.
type Analyzer interface {
	Analyze(path string) domain.Outcome
}

var _ Analyzer = (*aggregator.Aggregator)(nil)

// Option configures a Walker
type Option func(*Walker)

// WithExtension overrides DefaultExtension
func WithExtension(ext string) Option {
	return func(w *Walker) {
		if ext != "" {
			w.ext = ext
		}
	}
}

// WithObserver registers a callback invoked after every analyzed file,
// with the artifact path when one was written.
func WithObserver(fn func(out domain.Outcome, artifact string)) Option {
	return func(w *Walker) { w.observe = fn }
}

// Walker finds log files under a root and analyzes them one at a time
type Walker struct {
	fs       afero.Fs
	analyzer Analyzer
	sink     ArtifactSink
	log      *zap.Logger
	ext      string
	observe  func(domain.Outcome, string)
}

// New creates a Walker. A nil sink disables persistence.
func New(fs afero.Fs, analyzer Analyzer, sink ArtifactSink, log *zap.Logger, opts ...Option) *Walker {
	if log == nil {
		log = zap.NewNop()
	}
	w := &Walker{fs: fs, analyzer: analyzer, sink: sink, log: log, ext: DefaultExtension}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Files lists regular files under root ending in the configured extension,
// in lexical walk order. Unreadable subdirectories are logged and skipped.
func (w *Walker) Files(root string) ([]string, error) {
	start := w.walkRoot(root)

	var files []string
	err := afero.Walk(w.fs, start, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == start {
				return err
			}
			w.log.Warn("cannot enter path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if info.Mode().IsRegular() && strings.HasSuffix(info.Name(), w.ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// walkRoot returns the path to hand to afero.Walk. afero.Walk lstats its
// root, so a root that is a symlink to a directory gets a trailing separator
// to make the lstat resolve the link. Links below the root are not followed.
func (w *Walker) walkRoot(root string) string {
	lstater, ok := w.fs.(afero.Lstater)
	if !ok {
		return root
	}
	info, _, err := lstater.LstatIfPossible(root)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return root
	}
	if target, err := w.fs.Stat(root); err != nil || !target.IsDir() {
		return root
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root
	}
	return root + string(filepath.Separator)
}

// Walk analyzes every log file under root in order. Each summary is handed to
// the sink before the next file is read, so partial progress survives a later
// failure. A failed artifact write stops the walk and returns the summaries
// collected so far with the error.
func (w *Walker) Walk(root string) ([]*domain.FileSummary, error) {
	files, err := w.Files(root)
	if err != nil {
		return nil, err
	}

	var summaries []*domain.FileSummary
	for _, path := range files {
		w.log.Info("processing file", zap.String("path", path))
		out := w.analyzer.Analyze(path)
		if !out.OK() {
			w.notify(out, "")
			continue
		}

		summaries = append(summaries, out.Summary)
		artifact := ""
		if w.sink != nil {
			artifact, err = w.sink.Write(out.Summary)
			if err != nil {
				return summaries, err
			}
			w.log.Debug("saved statistics", zap.String("path", path), zap.String("artifact", artifact))
		}
		w.notify(out, artifact)
	}

	if len(summaries) == 0 {
		return nil, ErrNoResults
	}
	return summaries, nil
}

func (w *Walker) notify(out domain.Outcome, artifact string) {
	if w.observe != nil {
		w.observe(out, artifact)
	}
}
