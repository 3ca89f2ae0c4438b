package callstackidx

import (
	"fmt"
	"io"
)

// Stats is the aggregated snapshot printed by the CLI once every record
// has been dispatched.
type Stats struct {
	NumRecords          uint64
	NumTrees            uint64
	AvgFullMatchPercent float64
	NumMaps             uint64
	Counters            Counters
}

// Fprint writes the human-readable stats block shown by the CLI.
func (s Stats) Fprint(w io.Writer) {
	fmt.Fprintf(w, "Processed %d records\n", s.NumRecords)
	fmt.Fprintf(w, "Created %d trees\n", s.NumTrees)
	fmt.Fprintf(w, "Average 100%% matches: %.2f%%\n", s.AvgFullMatchPercent)
	fmt.Fprintf(w, "Number of maps: %d\n", s.NumMaps)
	fmt.Fprintf(w, "Number of allocations: %d\n", s.Counters.NumAllocs)
	fmt.Fprintf(w, "Number of free:        %d\n", s.Counters.NumFrees)
	fmt.Fprintf(w, "Number of LEAF frees:  %d\n", s.Counters.LeafFrees)
	fmt.Fprintf(w, "Max tree depth: %d\n", s.Counters.MaxDepth)
}
