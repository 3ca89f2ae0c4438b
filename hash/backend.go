package hash

import "github.com/stackagg/callstackidx"

type backend struct{}

func (backend) Name() string { return "hash" }

func (backend) New(counters *callstackidx.Counters) callstackidx.Tree {
	return New(counters)
}

func init() {
	callstackidx.Register(backend{})
}
