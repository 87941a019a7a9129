package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/vburojevic/logstat/internal/domain"
)

// DefaultArtifactSuffix is appended to a log file's base name.
const DefaultArtifactSuffix = "_stats.json"

// artifactKeys are the top-level keys every artifact must carry.
var artifactKeys = []string{"file", "total_requests", "total_stat", "top_ips", "top_longest"}

// ArtifactWriter persists one JSON document per summary into a run directory.
// The directory is created on the first write, so runs that produce nothing
// leave nothing behind.
type ArtifactWriter struct {
	fs     afero.Fs
	dir    string
	suffix string
	names  map[string]int
}

// NewArtifactWriter creates a writer for dir. An empty suffix means DefaultArtifactSuffix.
func NewArtifactWriter(fs afero.Fs, dir, suffix string) *ArtifactWriter {
	if suffix == "" {
		suffix = DefaultArtifactSuffix
	}
	return &ArtifactWriter{fs: fs, dir: dir, suffix: suffix, names: make(map[string]int)}
}

// Dir returns the run directory
func (w *ArtifactWriter) Dir() string { return w.dir }

// Write encodes s and stores it as <base><suffix>. A base name already used in
// this run gets a counter: access.log_2_stats.json, access.log_3_stats.json...
func (w *ArtifactWriter) Write(s *domain.FileSummary) (string, error) {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := EncodeSummary(&buf, s); err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}

	path := filepath.Join(w.dir, w.nameFor(s.File))
	if err := afero.WriteFile(w.fs, path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return path, nil
}

func (w *ArtifactWriter) nameFor(source string) string {
	base := filepath.Base(source)
	w.names[base]++
	if n := w.names[base]; n > 1 {
		return base + "_" + strconv.Itoa(n) + w.suffix
	}
	return base + w.suffix
}

// EncodeSummary writes s as indented JSON with non-ASCII and HTML characters unescaped.
func EncodeSummary(w io.Writer, s *domain.FileSummary) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(s)
}

// ReadSummary decodes an artifact produced by EncodeSummary. Key order of
// top_ips and total_stat is kept as written.
func ReadSummary(data []byte) (*domain.FileSummary, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("artifact is not valid JSON")
	}
	var missing []string
	for i, res := range gjson.GetManyBytes(data, artifactKeys...) {
		if !res.Exists() {
			missing = append(missing, artifactKeys[i])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("artifact is missing keys: %s", strings.Join(missing, ", "))
	}

	var s domain.FileSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}
	return &s, nil
}

// ReadArtifact loads and decodes the artifact at path
func ReadArtifact(fs afero.Fs, path string) (*domain.FileSummary, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	return ReadSummary(data)
}
