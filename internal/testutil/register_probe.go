package testutil

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/specialistvlad/noisegrid/internal/module"
	"github.com/specialistvlad/noisegrid/internal/registry"
)

// ProbeModule registers the "probe" module type. A probe returns a fixed
// value and counts how often it is built and sampled, which lets tests see
// how the app drives the graph.
type ProbeModule struct {
	builds  atomic.Int64
	samples atomic.Int64
}

type probeInput struct {
	Value float64 `noise:"value"`
	// Delay is slept on every sample, in milliseconds.
	Delay int `noise:"delay"`
	// Fail makes the build step return an error.
	Fail bool `noise:"fail"`
}

type probe struct {
	owner *ProbeModule
	value float64
	delay time.Duration
}

func (p *probe) Value(_, _, _ float64) float64 {
	p.owner.samples.Add(1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.value
}

// Register implements the registry.Module interface.
func (m *ProbeModule) Register(r *registry.Registry) {
	r.RegisterModule("probe", registry.Typed("Test probe returning a fixed value.",
		func() probeInput { return probeInput{} },
		func(in *probeInput) (module.Module, error) {
			m.builds.Add(1)
			if in.Fail {
				return nil, errors.New("probe asked to fail")
			}
			return &probe{owner: m, value: in.Value, delay: time.Duration(in.Delay) * time.Millisecond}, nil
		}))
}

// Builds returns the number of probes built so far.
func (m *ProbeModule) Builds() int64 { return m.builds.Load() }

// Samples returns the number of values read from all probes so far.
func (m *ProbeModule) Samples() int64 { return m.samples.Load() }
