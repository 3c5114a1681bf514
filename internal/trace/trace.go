// Package trace records per-generation populations as zstd-compressed JSON
// lines.
package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Entry is one generation of one scenario.
type Entry struct {
	Scenario   string `json:"scenario"`
	Generation int    `json:"generation"`
	Population int    `json:"population"`
	Changed    bool   `json:"changed"`
}

// Writer appends entries to a zstd stream. It is safe for concurrent use.
type Writer struct {
	mu  sync.Mutex
	c   io.Closer
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewWriter compresses entries into w. Closing the Writer does not close w.
func NewWriter(w io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, err
	}
	return &Writer{enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

// Create opens path for writing, creating parent directories as needed.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	tw, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	tw.c = f
	return tw, nil
}

// Write appends one entry.
func (t *Writer) Write(e Entry) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.w == nil {
		return errors.New("trace: write after close")
	}
	if _, err := t.w.Write(b); err != nil {
		return err
	}
	return t.w.WriteByte('\n')
}

// Close flushes buffered entries and finishes the zstd frame.
func (t *Writer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.w == nil {
		return nil
	}
	err := t.w.Flush()
	if cerr := t.enc.Close(); err == nil {
		err = cerr
	}
	if t.c != nil {
		if cerr := t.c.Close(); err == nil {
			err = cerr
		}
	}
	t.w, t.enc, t.c = nil, nil, nil
	return err
}

// ReadAll decodes every entry of a trace stream.
func ReadAll(r io.Reader) ([]Entry, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Entry
	sc := bufio.NewScanner(dec)
	for line := 1; sc.Scan(); line++ {
		var e Entry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return out, fmt.Errorf("trace line %d: %w", line, err)
		}
		out = append(out, e)
	}
	return out, sc.Err()
}

// ReadFile decodes the trace stored at path.
func ReadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f)
}

// Summary is the last recorded state of one scenario in a trace.
type Summary struct {
	Scenario    string
	Generations int
	Population  int
	// Settled is true when the final recorded generation changed nothing.
	Settled bool
}

// Summarize folds entries into one Summary per scenario, in order of first
// appearance. Entries of concurrent scenarios may be interleaved.
func Summarize(entries []Entry) []Summary {
	var out []Summary
	index := map[string]int{}
	for _, e := range entries {
		i, ok := index[e.Scenario]
		if !ok {
			i = len(out)
			index[e.Scenario] = i
			out = append(out, Summary{Scenario: e.Scenario})
		}
		if e.Generation >= out[i].Generations {
			out[i].Generations = e.Generation
			out[i].Population = e.Population
			out[i].Settled = !e.Changed
		}
	}
	return out
}
