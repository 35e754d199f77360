// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuron has a minimal leaky integrate-and-fire (LIF) neuron that owns
a spike archive and accepts spike events, providing a concrete postsynaptic
target for plastic connections.  It is deliberately small: delta-function
synaptic input, single compartment, fixed refractory period.
*/
package neuron

import (
	"github.com/emer/stdp/archive"
	"github.com/emer/stdp/spike"
)

// LIFParams are the leaky integrate-and-fire membrane parameters.
// Voltages are in mV, times in ms.
type LIFParams struct {

	// membrane time constant, in ms.
	Tau float32 `default:"10" min:"0"`

	// resting / leak reversal potential.
	EL float32 `default:"-70"`

	// spike threshold: crossing from below emits a spike.
	Thr float32 `default:"-55"`

	// reset potential after a spike.
	VmR float32 `default:"-70"`

	// absolute refractory period after a spike, in ms.
	TRef float32 `default:"2" min:"0"`
}

func (lp *LIFParams) Defaults() {
	lp.Tau = 10
	lp.EL = -70
	lp.Thr = -55
	lp.VmR = -70
	lp.TRef = 2
	lp.Update()
}

func (lp *LIFParams) Update() {
}

// LIF is a leaky integrate-and-fire neuron with delta-function
// synaptic input: each received spike event deflects the membrane potential
// by its weight (mV) at the next Cycle.  Spikes are recorded into the
// embedded archive, which plastic connections read.
type LIF struct {
	archive.Archive

	// membrane parameters.
	Pars LIFParams `display:"inline"`

	// membrane potential, mV.
	Vm float32

	// summed weight of spike events received since the last Cycle.
	GeRaw float32

	// remaining refractory time, ms.  Vm is clamped at VmR while > 0.
	Ref float32
}

// NewLIF returns a new neuron with default parameters, at rest.
func NewLIF() *LIF {
	nr := &LIF{}
	nr.Defaults()
	nr.Init()
	return nr
}

func (nr *LIF) Defaults() {
	nr.Archive.Defaults()
	nr.Pars.Defaults()
}

// Init resets membrane state and the archive.
func (nr *LIF) Init() {
	nr.Archive.Init()
	nr.Vm = nr.Pars.EL
	nr.GeRaw = 0
	nr.Ref = 0
}

// RecvSpike accumulates one incoming spike event.  Transmission delay is
// the caller's concern: events are integrated at the next Cycle.
func (nr *LIF) RecvSpike(ev *spike.Event) {
	nr.GeRaw += ev.Weight
}

// Cycle advances the membrane by dt ms, ending at time t, integrating any
// accumulated input.  Returns true if the neuron spiked, in which case the
// spike is recorded in the archive at time t.
func (nr *LIF) Cycle(t, dt float32) bool {
	if nr.Ref > 0 {
		nr.Ref -= dt
		nr.GeRaw = 0
		nr.Vm = nr.Pars.VmR
		return false
	}
	nr.Vm += dt * (nr.Pars.EL - nr.Vm) / nr.Pars.Tau
	nr.Vm += nr.GeRaw
	nr.GeRaw = 0
	if nr.Vm >= nr.Pars.Thr {
		nr.Spike(t)
		return true
	}
	return false
}

// Spike records a spike at time t and resets the membrane.  Called by Cycle
// at threshold; call directly to clamp spikes at exact times, as pairing
// protocols do.
func (nr *LIF) Spike(t float32) {
	nr.AddSpike(t)
	nr.Vm = nr.Pars.VmR
	nr.Ref = nr.Pars.TRef
}
