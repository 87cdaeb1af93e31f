// Package bufstat records how sequential buffers are used
//
// a Recorder is a seqbuffer.Observer that keeps HDR histograms of the length
// of every reservation and of the capacity reached by every growth, which is
// usually enough to pick an initial capacity that avoids growing at all.
package bufstat

import (
	"sync"

	"github.com/codahale/hdrhistogram"
	"github.com/pkg/errors"

	"github.com/performancecopilot/seqbuffer"
)

// significant figures kept by the histograms
const sigfigs = 3

// Distribution summarizes one histogram
type Distribution struct {
	Count int64
	Min   int64
	Max   int64
	Mean  float64
	P50   int64
	P90   int64
	P99   int64
}

// Stats is a point in time copy of a Recorder
type Stats struct {
	Reads    int64
	Writes   int64
	Growths  int64
	Clamped  int64 // values above the trackable maximum, recorded as the maximum
	Reserved Distribution
	Grown    Distribution
}

var _ seqbuffer.Observer = (*Recorder)(nil)

// Recorder collects reservation and growth statistics
//
// it is safe for concurrent use, so a single Recorder can observe any number of buffers.
type Recorder struct {
	mu           sync.Mutex
	max          int64
	reservations *hdrhistogram.Histogram
	capacities   *hdrhistogram.Histogram
	reads        int64
	writes       int64
	growths      int64
	clamped      int64
}

// NewRecorder creates a Recorder tracking values up to max bytes
func NewRecorder(max int64) (*Recorder, error) {
	if max < 2 {
		return nil, errors.Errorf("max %d, must be at least 2", max)
	}

	return &Recorder{
		max:          max,
		reservations: hdrhistogram.New(1, max, sigfigs),
		capacities:   hdrhistogram.New(1, max, sigfigs),
	}, nil
}

func (r *Recorder) record(h *hdrhistogram.Histogram, v int64) {
	if v > r.max {
		r.clamped++
		v = r.max
	}

	// only fails for values out of range, which were clamped above
	_ = h.RecordValue(v)
}

// Reserved records a reservation of length bytes
func (r *Recorder) Reserved(length int, write bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if write {
		r.writes++
	} else {
		r.reads++
	}

	r.record(r.reservations, int64(length))
}

// Grown records a growth from one capacity to another
func (r *Recorder) Grown(from, to int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.growths++
	r.record(r.capacities, int64(to))
}

func distribution(h *hdrhistogram.Histogram) Distribution {
	if h.TotalCount() == 0 {
		return Distribution{}
	}

	return Distribution{
		Count: h.TotalCount(),
		Min:   h.Min(),
		Max:   h.Max(),
		Mean:  h.Mean(),
		P50:   h.ValueAtQuantile(50),
		P90:   h.ValueAtQuantile(90),
		P99:   h.ValueAtQuantile(99),
	}
}

// Snapshot returns the current statistics
func (r *Recorder) Snapshot() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Stats{
		Reads:    r.reads,
		Writes:   r.writes,
		Growths:  r.growths,
		Clamped:  r.clamped,
		Reserved: distribution(r.reservations),
		Grown:    distribution(r.capacities),
	}
}

// SuggestedCapacity returns the capacity that the passed percentile of
// growths ended at, or 0 if nothing grew yet
func (r *Recorder) SuggestedCapacity(percentile float64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.capacities.TotalCount() == 0 {
		return 0
	}

	return r.capacities.ValueAtQuantile(percentile)
}

// Reset clears all recorded values
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reservations.Reset()
	r.capacities.Reset()
	r.reads, r.writes, r.growths, r.clamped = 0, 0, 0, 0
}
