package callstackidx

import "github.com/stackagg/callstackidx/internal/omap"

// Dispatcher routes each incoming Record to the Tree for its stream-id,
// creating that Tree on first sight. Iteration for stats walks trees in
// ascending stream-id order.
type Dispatcher struct {
	backend    Backend
	counters   *Counters
	trees      *omap.Map[uint64, Tree]
	numRecords uint64
	// numMaps, when set, reports the map interner's size for the Stats
	// snapshot. Only the callchain backend maintains an interner; ART and
	// hash leave this nil and report zero maps.
	numMaps func() uint64
}

// NewDispatcher returns a Dispatcher that creates Trees from backend.
// numMaps may be nil.
func NewDispatcher(backend Backend, numMaps func() uint64) *Dispatcher {
	return &Dispatcher{
		backend:  backend,
		counters: &Counters{},
		trees:    omap.New[uint64, Tree](),
		numMaps:  numMaps,
	}
}

// Counters exposes the shared diagnostic counters every Tree this
// dispatcher creates reports into.
func (d *Dispatcher) Counters() *Counters {
	return d.counters
}

// Insert routes rec to its stream's Tree, creating the tree if this is the
// first record seen for rec.ID.
func (d *Dispatcher) Insert(rec Record) {
	tree, ok := d.trees.Get(rec.ID)
	if !ok {
		tree = d.backend.New(d.counters)
		d.trees.Put(rec.ID, tree)
	}
	tree.Insert(rec.Stack())
	d.numRecords++
}

// NumTrees returns the number of trees created so far.
func (d *Dispatcher) NumTrees() int {
	return d.trees.Len()
}

// Stats walks every tree in ascending stream-id order and aggregates a
// snapshot.
func (d *Dispatcher) Stats() Stats {
	var totalSamples, totalFullMatches uint64
	var numTrees uint64

	d.trees.Ascend(func(_ uint64, t Tree) bool {
		ts := t.Stats()
		numTrees++
		totalSamples += ts.Total
		totalFullMatches += ts.FullMatches
		return true
	})

	s := Stats{
		NumRecords: d.numRecords,
		NumTrees:   numTrees,
		Counters:   *d.counters,
	}
	if totalSamples > 0 {
		s.AvgFullMatchPercent = float64(totalFullMatches) / float64(totalSamples) * 100
	}
	if d.numMaps != nil {
		s.NumMaps = d.numMaps()
	}
	return s
}

// Put releases every tree the dispatcher holds.
func (d *Dispatcher) Put() {
	d.trees.Ascend(func(_ uint64, t Tree) bool {
		t.Put()
		return true
	})
}
