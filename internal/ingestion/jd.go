package ingestion

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jonathan/jobalign/internal/extraction"
	"github.com/jonathan/jobalign/internal/fetch"
	"github.com/jonathan/jobalign/internal/types"
)

// Failure records one JD source that could not be ingested. Failures are
// reported per source and never abort the remaining sources.
type Failure struct {
	Source string
	Err    error
}

// Result is the outcome of assembling the JD list: the successfully ingested
// entries in submission order with 1-based indices, plus per-source failures.
type Result struct {
	Entries  []types.JDEntry
	Failures []Failure
}

// Builder accumulates JD sources in submission order. Sources are processed
// one at a time as they are added; a failed source is recorded and skipped,
// and indices are assigned to the surviving entries only.
type Builder struct {
	entries  []types.JDEntry
	failures []Failure
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) add(title, text string) {
	b.entries = append(b.entries, types.JDEntry{
		Index: len(b.entries) + 1,
		Title: title,
		Text:  text,
	})
}

// AddText appends a pasted JD text verbatim.
func (b *Builder) AddText(title, text string) {
	b.add(title, text)
}

// AddFile extracts a JD from a document already read into memory.
func (b *Builder) AddFile(name string, data []byte) {
	text, err := extraction.Extract(extraction.NewSourceDocument(name, data))
	if err != nil {
		b.failures = append(b.failures, Failure{Source: name, Err: err})
		return
	}
	b.add(filepath.Base(name), text)
}

// AddFilePath reads and extracts a JD from a file on disk.
func (b *Builder) AddFilePath(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		b.failures = append(b.failures, Failure{Source: path, Err: err})
		return
	}
	b.AddFile(path, data)
}

// AddURL fetches a JD posting page and extracts its main text. URL-sourced
// text passes through CleanText since raw page text is whitespace-heavy.
func (b *Builder) AddURL(ctx context.Context, urlStr string) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		b.failures = append(b.failures, Failure{Source: urlStr, Err: err})
		return
	}
	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		b.failures = append(b.failures, Failure{Source: urlStr, Err: err})
		return
	}
	b.add(urlStr, CleanText(text))
}

// Result returns the assembled entries and failures.
func (b *Builder) Result() Result {
	return Result{Entries: b.entries, Failures: b.failures}
}
