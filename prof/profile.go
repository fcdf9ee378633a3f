// Package prof collects coarse wall-clock timings for the benchmark cmds.
package prof

import (
	"sort"
	"sync"
	"time"
)

// Entry is a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under the given label. Use with
// defer at the top of the measured region.
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected entries and clears the record.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Totals aggregates entries per label, sorted by descending total time.
func Totals(entries []Entry) []Entry {
	sums := make(map[string]time.Duration)
	for _, e := range entries {
		sums[e.Label] += e.Dur
	}
	out := make([]Entry, 0, len(sums))
	for label, dur := range sums {
		out = append(out, Entry{Label: label, Dur: dur})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Dur != out[j].Dur {
			return out[i].Dur > out[j].Dur
		}
		return out[i].Label < out[j].Label
	})
	return out
}
