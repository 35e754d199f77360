// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package triplet implements the triplet spike-timing-dependent plasticity
(STDP) rule of Pfister & Gerstner (2006) as an event-driven, per-connection
weight-update engine.

The connection keeps two exponentially decaying presynaptic traces, KPlus
(r1, fast) and KPlusTriplet (r2, slow), each incremented by 1 on a
presynaptic spike.  The matching postsynaptic traces (o1, o2) are owned by
the postsynaptic neuron and read through the TraceSource interface.  On each
presynaptic spike the connection first replays all postsynaptic spikes since
its previous spike, facilitating the weight for each (all-to-all
interaction), then applies one depression step, updates its own traces, and
forwards the spike event to the target with the new weight stamped in.
*/
package triplet

import "cogentcore.org/core/math32"

// PlastParams are the triplet STDP plasticity parameters for one connection.
// Defaults are the visual-cortex all-to-all fit from Pfister & Gerstner
// (2006), table 3.
type PlastParams struct {

	// time constant of the fast presynaptic trace KPlus (r1), in ms.
	TauPlus float32 `default:"16.8" min:"0"`

	// time constant of the slow presynaptic trace KPlusTriplet (r2), in ms.
	TauPlusTriplet float32 `default:"101" min:"0"`

	// amplitude of the pair potentiation term.
	Aplus float32 `default:"5e-10"`

	// amplitude of the triplet potentiation term, multiplied by the slow
	// postsynaptic trace at each postsynaptic spike.
	AplusTriplet float32 `default:"0.0062"`

	// amplitude of the pair depression term.
	Aminus float32 `default:"0.007"`

	// amplitude of the triplet depression term, multiplied by the slow
	// presynaptic trace at each presynaptic spike.
	AminusTriplet float32 `default:"0.00023"`

	// maximum weight magnitude.  The sign of WMax sets the allowed sign of
	// the weight: positive for excitatory connections, negative for
	// inhibitory ones.
	WMax float32 `default:"100"`
}

func (tp *PlastParams) Defaults() {
	tp.TauPlus = 16.8
	tp.TauPlusTriplet = 101
	tp.Aplus = 5e-10
	tp.AplusTriplet = 6.2e-3
	tp.Aminus = 7e-3
	tp.AminusTriplet = 2.3e-4
	tp.WMax = 100
	tp.Update()
}

func (tp *PlastParams) Update() {
}

// Facilitate returns the weight after one potentiation step triggered by a
// postsynaptic spike.  kplus is the fast presynaptic trace decayed to the
// time of that spike; ky is the slow postsynaptic trace just prior to it
// (its own +1 contribution subtracted out).  The magnitude is clamped to
// |WMax| and the sign forced to that of WMax.
func (tp *PlastParams) Facilitate(w, kplus, ky float32) float32 {
	nw := math32.Abs(w) + kplus*(tp.Aplus+tp.AplusTriplet*ky)
	return math32.Copysign(math32.Min(nw, math32.Abs(tp.WMax)), tp.WMax)
}

// Depress returns the weight after the single depression step of a
// presynaptic spike.  kminus is the fast postsynaptic trace at the
// (delay-adjusted) presynaptic spike time; ktriplet is the slow presynaptic
// trace, decayed across the inter-spike interval but not yet incremented
// for this spike.  The magnitude is clamped at 0 and the sign forced to
// that of WMax.
func (tp *PlastParams) Depress(w, kminus, ktriplet float32) float32 {
	nw := math32.Abs(w) - kminus*(tp.Aminus+tp.AminusTriplet*ktriplet)
	return math32.Copysign(math32.Max(nw, 0), tp.WMax)
}
