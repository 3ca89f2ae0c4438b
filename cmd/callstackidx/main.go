// Command callstackidx drives a RecordSource through one backend's
// Dispatcher and prints the resulting Stats.
//
// cobra parses the single positional backend-name argument; logrus.Fatal
// reports an unknown backend name to stderr and exits 1.
package main

import (
	"os"

	_ "github.com/stackagg/callstackidx/art"
	"github.com/stackagg/callstackidx/callchain"
	_ "github.com/stackagg/callstackidx/hash"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stackagg/callstackidx"
)

func main() {
	log := logrus.New()

	root := &cobra.Command{
		Use:   "callstackidx {linux|art|hash}",
		Short: "Aggregate profiler callstack samples into a per-stream index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(log, args[0])
		},
	}
	root.SilenceUsage = true

	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("callstackidx: fatal")
	}
}

func run(log *logrus.Logger, backendName string) error {
	backend, ok := callstackidx.Lookup(backendName)
	if !ok {
		log.WithField("backend", backendName).
			WithField("known", callstackidx.Names()).
			Fatal("callstackidx: unknown backend")
	}

	var numMaps func() uint64
	if backendName == "linux" {
		numMaps = callchain.NumMaps
	}

	dispatcher := callstackidx.NewDispatcher(backend, numMaps)
	source := NewFixtureSource(log)

	for {
		rec, ok := source.Next()
		if !ok {
			break
		}
		dispatcher.Insert(rec)
	}

	stats := dispatcher.Stats()
	stats.Fprint(os.Stdout)
	dispatcher.Put()
	return nil
}
