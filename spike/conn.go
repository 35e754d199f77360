// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spike

import "cogentcore.org/core/math32"

// ConnBase has the delay and routing state shared by all connection types.
// Plastic connections embed it; the algorithm-specific state lives in the
// embedding type.
type ConnBase struct {

	// transmission (dendritic) delay in ms -- postsynaptic spike times are
	// shifted by this amount when aligned against presynaptic spikes.
	Delay float32 `default:"1" min:"0"`

	// delay in resolution steps, derived from Delay -- use UpdateSteps
	// after changing Delay or the resolution.
	DelaySteps int32 `edit:"-"`

	// receptor port on the target neuron.
	RPort int32
}

func (cb *ConnBase) Defaults() {
	cb.Delay = 1
	cb.UpdateSteps(DefRes)
}

// UpdateSteps recomputes DelaySteps from Delay at the given resolution
// (ms per step).
func (cb *ConnBase) UpdateSteps(res float32) {
	cb.DelaySteps = int32(math32.Round(cb.Delay / res))
}

// DefRes is the default simulation resolution in ms per step.
const DefRes = float32(0.1)

// Time is the fixed-resolution clock for event-driven simulations.
// Events carry exact ms times; the clock only quantizes delays and drives
// cycle-level updates such as neuron integration.
type Time struct {

	// accumulated simulation time, in ms.
	CurTime float32

	// resolution: ms per step.
	Res float32 `default:"0.1"`

	// step counter: increments once per Res.
	Step int
}

// NewTime returns a new Time with default parameters.
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

func (tm *Time) Defaults() {
	tm.Res = DefRes
}

// Reset resets the counters back to zero.
func (tm *Time) Reset() {
	tm.CurTime = 0
	tm.Step = 0
}

// CycleInc advances time by one resolution step.
func (tm *Time) CycleInc() {
	tm.Step++
	tm.CurTime += tm.Res
}

// StepsToMS returns the ms duration of the given number of steps.
func (tm *Time) StepsToMS(steps int32) float32 {
	return float32(steps) * tm.Res
}

// MSToSteps returns the number of whole steps in the given ms duration.
func (tm *Time) MSToSteps(ms float32) int32 {
	return int32(math32.Round(ms / tm.Res))
}
