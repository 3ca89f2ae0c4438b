package main

import (
	"github.com/sirupsen/logrus"
	"github.com/stackagg/callstackidx"
)

// FixtureSource is an in-memory RecordSource standing in for the external
// profiler feed (reading /proc, perf_event_open, or a recorded trace file
// is out of scope per spec's Non-goals). It replays a small, fixed
// population of streams and stacks so the CLI has something to aggregate.
type FixtureSource struct {
	log     *logrus.Logger
	records []callstackidx.Record
	next    int
}

// NewFixtureSource builds a fixture with a handful of overlapping
// callstacks across a few stream-ids, enough to exercise shared prefixes,
// exact repeats, and distinct maps across every backend.
func NewFixtureSource(log *logrus.Logger) *FixtureSource {
	stacks := [][]callstackidx.Frame{
		{{IP: 0x1000, Map: 1}, {IP: 0x1010, Map: 1}, {IP: 0x1020, Map: 1}},
		{{IP: 0x1000, Map: 1}, {IP: 0x1010, Map: 1}, {IP: 0x1030, Map: 1}},
		{{IP: 0x1000, Map: 1}, {IP: 0x1010, Map: 1}, {IP: 0x1020, Map: 1}},
		{{IP: 0x2000, Map: 2}, {IP: 0x2010, Map: 2}},
		{{IP: 0x2000, Map: 2}, {IP: 0x2010, Map: 2}},
		{{IP: 0x3000, Map: 1}},
	}
	streamIDs := []uint64{1, 1, 1, 2, 2, 3}

	var records []callstackidx.Record
	for i, frames := range stacks {
		var rec callstackidx.Record
		rec.ID = streamIDs[i]
		copy(rec.Frames[:], frames)
		records = append(records, rec)
	}

	log.WithField("records", len(records)).Debug("callstackidx: loaded fixture records")
	return &FixtureSource{log: log, records: records}
}

// Next implements callstackidx.RecordSource.
func (f *FixtureSource) Next() (callstackidx.Record, bool) {
	if f.next >= len(f.records) {
		return callstackidx.Record{}, false
	}
	rec := f.records[f.next]
	f.next++
	return rec, true
}
