package diag

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"
	"sync"

	"github.com/webfacts/presencescore/internal/model"
)

// Entry is one recorded topic calculation.
type Entry struct {
	// Topic is the scored concern.
	Topic model.Topic `json:"topic"`

	// InputsHash fingerprints the inputs that produced the score.
	// Two runs over identical inputs produce identical hashes, which makes
	// unexplained score drift detectable.
	InputsHash string `json:"inputs_hash"`

	// Values holds named intermediate values of the calculation.
	Values map[string]float64 `json:"values,omitempty"`

	// Score is the resulting topic score.
	Score model.Score `json:"score"`
}

// Recorder receives one entry per topic calculation.
// Implementations must be safe for concurrent use; the engine scores
// topics in parallel.
type Recorder interface {
	Record(e Entry)
}

// HashInputs fingerprints an arbitrary input value via its JSON form.
// Unmarshalable input yields a distinct constant rather than an error;
// a diagnostics fingerprint must never fail a scoring run.
func HashInputs(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "h-unhashable"
	}
	h := fnv.New64a()
	h.Write(data)
	return fmt.Sprintf("h-%016x", h.Sum64())
}

// NopRecorder discards all entries.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(Entry) {}

// LogRecorder writes each entry to a structured logger at debug level.
type LogRecorder struct {
	logger *slog.Logger
}

// NewLogRecorder creates a recorder that logs entries.
// A nil logger falls back to slog.Default().
func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogRecorder{logger: logger}
}

// Record implements Recorder.
func (r *LogRecorder) Record(e Entry) {
	attrs := []any{
		"topic", string(e.Topic),
		"inputs", e.InputsHash,
		"score", e.Score.String(),
	}
	// Stable key order keeps log lines diffable between runs.
	keys := make([]string, 0, len(e.Values))
	for k := range e.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, k, e.Values[k])
	}
	r.logger.Debug("topic scored", attrs...)
}

// MemoryRecorder collects entries in memory, for tests and for embedding
// calculation traces into reports.
type MemoryRecorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

// Record implements Recorder.
func (r *MemoryRecorder) Record(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Entries returns a copy of the recorded entries.
func (r *MemoryRecorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// EntryFor returns the recorded entry for a topic.
// The second return value is false if the topic was not recorded.
func (r *MemoryRecorder) EntryFor(topic model.Topic) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.Topic == topic {
			return e, true
		}
	}
	return Entry{}, false
}
