package diag

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/webfacts/presencescore/internal/model"
)

func TestHashInputs(t *testing.T) {
	t.Parallel()

	type inputs struct {
		Domain string
		Count  int
	}

	a := HashInputs(inputs{Domain: "example.de", Count: 3})
	b := HashInputs(inputs{Domain: "example.de", Count: 3})
	c := HashInputs(inputs{Domain: "example.de", Count: 4})

	if a != b {
		t.Errorf("identical inputs hashed differently: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different inputs hashed identically: %s", a)
	}
	if !strings.HasPrefix(a, "h-") {
		t.Errorf("hash %q missing the h- prefix", a)
	}
}

func TestHashInputsUnhashable(t *testing.T) {
	t.Parallel()

	if got := HashInputs(func() {}); got != "h-unhashable" {
		t.Errorf("HashInputs(func) = %q, want h-unhashable", got)
	}
}

func TestMemoryRecorder(t *testing.T) {
	t.Parallel()

	r := NewMemoryRecorder()
	r.Record(Entry{Topic: model.TopicBacklinks, Score: model.NewScore(82)})
	r.Record(Entry{Topic: model.TopicSocialPresence, Score: model.NoData()})

	if got := len(r.Entries()); got != 2 {
		t.Fatalf("entries = %d, want 2", got)
	}
	e, ok := r.EntryFor(model.TopicBacklinks)
	if !ok {
		t.Fatal("backlinks entry not found")
	}
	if e.Score != model.NewScore(82) {
		t.Errorf("score = %v, want 82", e.Score)
	}
	if _, ok := r.EntryFor(model.TopicHourlyRates); ok {
		t.Error("unexpected entry for an unrecorded topic")
	}
}

func TestMemoryRecorderConcurrent(t *testing.T) {
	t.Parallel()

	r := NewMemoryRecorder()
	var wg sync.WaitGroup
	for _, topic := range model.AllTopics() {
		wg.Add(1)
		go func(topic model.Topic) {
			defer wg.Done()
			r.Record(Entry{Topic: topic, Score: model.NewScore(50)})
		}(topic)
	}
	wg.Wait()

	if got := len(r.Entries()); got != len(model.AllTopics()) {
		t.Errorf("entries = %d, want %d", got, len(model.AllTopics()))
	}
}

func TestLogRecorderEmitsAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewLogRecorder(NewLogger(&buf, true))
	r.Record(Entry{
		Topic:      model.TopicHourlyRates,
		InputsHash: "h-0000000000000001",
		Values:     map[string]float64{"ratio": 1.1},
		Score:      model.NewScore(85),
	})

	out := buf.String()
	for _, want := range []string{"topic scored", "hourly_rates", "ratio", "85"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestLogRecorderQuietByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewLogRecorder(NewLogger(&buf, false))
	r.Record(Entry{Topic: model.TopicHourlyRates, Score: model.NewScore(85)})

	if buf.Len() != 0 {
		t.Errorf("non-verbose logger emitted trace output: %s", buf.String())
	}
}
