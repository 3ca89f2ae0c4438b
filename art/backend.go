package art

import "github.com/stackagg/callstackidx"

// backend is the ART callstackidx.Backend registered with the root registry.
type backend struct{}

func (backend) Name() string { return "art" }

func (backend) New(counters *callstackidx.Counters) callstackidx.Tree {
	return New(counters)
}

func init() {
	callstackidx.Register(backend{})
}
