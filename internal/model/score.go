package model

import (
	"encoding/json"
	"math"
	"strconv"
)

// Score is a single 0-100 quality value or the explicit absence of one.
// A topic without automated and manual data yields NoData, which is
// excluded from every average rather than coerced to zero.
//
// Design decision: The original implementation used 0, null, and undefined
// interchangeably to mean "no data", which allowed missing topics to
// silently drag averages down. We use an explicit sum type instead so that
// "no data" can never become "0% quality". The zero value of Score is
// NoData, so forgotten initialization degrades safely.
type Score struct {
	// value is the clamped score. Only meaningful when valid is true.
	value int

	// valid reports whether value carries data.
	valid bool
}

// NewScore returns a Score clamped to [0,100].
func NewScore(value int) Score {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return Score{value: value, valid: true}
}

// NewScoreFromFloat rounds and clamps a float score.
// NaN and infinities are sanitized to 0: the engine must always produce
// a displayable result, so malformed numeric input never propagates.
func NewScoreFromFloat(value float64) Score {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewScore(0)
	}
	return NewScore(int(math.Round(value)))
}

// NoData returns the explicit "no score available" value.
func NoData() Score {
	return Score{}
}

// IsNoData reports whether the score carries no data.
func (s Score) IsNoData() bool {
	return !s.valid
}

// Value returns the score value, or 0 for NoData.
// Callers that must distinguish a genuine 0 from NoData should use ValueOK.
func (s Score) Value() int {
	return s.value
}

// ValueOK returns the score value and whether it carries data.
func (s Score) ValueOK() (int, bool) {
	return s.value, s.valid
}

// Min applies an upper bound to the score. A NoData receiver stays NoData
// (capping a missing score never invents one); a NoData bound imposes no
// constraint.
func (s Score) Min(other Score) Score {
	if !s.valid || !other.valid {
		return s
	}
	if other.value < s.value {
		return other
	}
	return s
}

// String returns the score as a decimal string, or "no data".
func (s Score) String() string {
	if !s.valid {
		return "no data"
	}
	return strconv.Itoa(s.value)
}

// MarshalJSON encodes the score as a JSON number, or null for NoData.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON decodes a JSON number or null. Values outside [0,100]
// are clamped on the way in.
func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NoData()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = NewScoreFromFloat(v)
	return nil
}
