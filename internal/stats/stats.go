// Package stats aggregates how recent resume parses went: how long they took
// and which fields they managed to fill.
package stats

import (
	"math"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/dgallion1/resumeparser/internal/resume"
)

// Field is one extracted resume field tracked for coverage.
type Field uint8

const (
	FieldName Field = 1 << iota
	FieldEmail
	FieldPhone
	FieldSkills
	FieldEducation
	FieldExperience
)

// Found reports which fields of rec came back non-empty.
func Found(rec resume.Record) Field {
	var f Field
	if rec.Name != "" {
		f |= FieldName
	}
	if rec.Email != "" {
		f |= FieldEmail
	}
	if rec.Phone != "" {
		f |= FieldPhone
	}
	if len(rec.Skills) > 0 {
		f |= FieldSkills
	}
	if len(rec.Education) > 0 {
		f |= FieldEducation
	}
	if len(rec.ExperienceParsed) > 0 {
		f |= FieldExperience
	}
	return f
}

type observation struct {
	at      time.Time
	took    time.Duration
	found   Field
	skills  int
	entries int
}

// Coverage counts the parses in which each field was non-empty.
type Coverage struct {
	Name       int `json:"name"`
	Email      int `json:"email"`
	Phone      int `json:"phone"`
	Skills     int `json:"skills"`
	Education  int `json:"education"`
	Experience int `json:"experience"`
}

func (c *Coverage) add(f Field) {
	if f&FieldName != 0 {
		c.Name++
	}
	if f&FieldEmail != 0 {
		c.Email++
	}
	if f&FieldPhone != 0 {
		c.Phone++
	}
	if f&FieldSkills != 0 {
		c.Skills++
	}
	if f&FieldEducation != 0 {
		c.Education++
	}
	if f&FieldExperience != 0 {
		c.Experience++
	}
}

// Latency summarizes parse durations in microseconds. Percentiles use the
// nearest-rank method, so each one is an observed value.
type Latency struct {
	MinUs  int64   `json:"min_us"`
	MaxUs  int64   `json:"max_us"`
	MeanUs float64 `json:"mean_us"`
	P50Us  int64   `json:"p50_us"`
	P90Us  int64   `json:"p90_us"`
	P99Us  int64   `json:"p99_us"`
}

// Snapshot describes the parses still inside the window.
type Snapshot struct {
	Parsed     int      `json:"parsed"`
	Latency    Latency  `json:"latency"`
	Found      Coverage `json:"found"`
	AvgSkills  float64  `json:"avg_skills"`
	AvgEntries float64  `json:"avg_entries"`
}

// ParseStats keeps parse observations for a sliding window. It is safe for
// concurrent use.
type ParseStats struct {
	mu     sync.Mutex
	window time.Duration
	obs    []observation // ordered by at
}

// NewParseStats keeps observations for window; a non-positive window means
// one hour.
func NewParseStats(window time.Duration) *ParseStats {
	if window <= 0 {
		window = time.Hour
	}
	return &ParseStats{window: window}
}

// Observe records one finished parse.
func (s *ParseStats) Observe(rec resume.Record, took time.Duration) {
	o := observation{
		took:    max(took, 0),
		found:   Found(rec),
		skills:  len(rec.Skills),
		entries: len(rec.ExperienceParsed),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o.at = time.Now()
	s.expireLocked(o.at)
	s.obs = append(s.obs, o)
}

// Parse runs p over text and observes the result.
func (s *ParseStats) Parse(p *resume.Parser, text string) resume.Record {
	start := time.Now()
	rec := p.Parse(text)
	s.Observe(rec, time.Since(start))
	return rec
}

// Snapshot aggregates the observations inside the window.
func (s *ParseStats) Snapshot() Snapshot {
	s.mu.Lock()
	s.expireLocked(time.Now())
	obs := slices.Clone(s.obs)
	s.mu.Unlock()

	if len(obs) == 0 {
		return Snapshot{}
	}

	snap := Snapshot{Parsed: len(obs)}
	micros := make([]int64, len(obs))
	var total time.Duration
	var skills, entries int
	for i, o := range obs {
		micros[i] = o.took.Microseconds()
		total += o.took
		skills += o.skills
		entries += o.entries
		snap.Found.add(o.found)
	}
	slices.Sort(micros)

	n := float64(len(obs))
	snap.Latency = Latency{
		MinUs:  micros[0],
		MaxUs:  micros[len(micros)-1],
		MeanUs: float64(total.Microseconds()) / n,
		P50Us:  nearestRank(micros, 50),
		P90Us:  nearestRank(micros, 90),
		P99Us:  nearestRank(micros, 99),
	}
	snap.AvgSkills = float64(skills) / n
	snap.AvgEntries = float64(entries) / n
	return snap
}

// expireLocked drops observations older than the window. Observations are
// appended under the lock with a monotonic timestamp, so they stay sorted.
func (s *ParseStats) expireLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	keep := sort.Search(len(s.obs), func(i int) bool {
		return !s.obs[i].at.Before(cutoff)
	})
	if keep > 0 {
		s.obs = slices.Delete(s.obs, 0, keep)
	}
}

// nearestRank returns the smallest value with at least pct percent of the
// values at or below it. sorted must be non-empty.
func nearestRank(sorted []int64, pct float64) int64 {
	rank := int(math.Ceil(pct / 100 * float64(len(sorted))))
	return sorted[min(max(rank, 1), len(sorted))-1]
}
