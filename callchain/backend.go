package callchain

import (
	"github.com/stackagg/callstackidx"
	"github.com/stackagg/callstackidx/mapintern"
)

// sharedInterner is process-wide: every callchain Tree interns map
// pointers through this one instance, regardless of which stream-id it
// belongs to, so the same map value always yields the same handle.
var sharedInterner = mapintern.New()

// NumMaps returns the number of distinct maps interned so far, for the
// dispatcher's Stats.NumMaps field.
func NumMaps() uint64 {
	return uint64(sharedInterner.Len())
}

type backend struct{}

func (backend) Name() string { return "linux" }

func (backend) New(counters *callstackidx.Counters) callstackidx.Tree {
	return New(counters, sharedInterner)
}

func init() {
	callstackidx.Register(backend{})
}
