// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package archive has the postsynaptic spike archive: the decaying fast and
slow (triplet) spike traces of a neuron, together with the per-spike history
that plastic connections replay between their presynaptic spikes.

The archive is the system of record for postsynaptic trace dynamics.  The
owning neuron appends spikes; connections only read, via History and KValue.
Reads are pure and safe to run concurrently with each other, but the owner
must not append while a read is in flight -- the surrounding update loop
provides that phase boundary.
*/
package archive

import (
	"cogentcore.org/core/math32"
	"github.com/emer/stdp/spike"
)

// Params are the postsynaptic trace time constants.
type Params struct {

	// time constant of the fast postsynaptic trace Kminus (o1), in ms.
	TauMinus float32 `default:"20" min:"0"`

	// time constant of the slow (triplet) postsynaptic trace
	// KminusTriplet (o2), in ms.
	TauMinusTriplet float32 `default:"110" min:"0"`
}

func (tp *Params) Defaults() {
	tp.TauMinus = 20
	tp.TauMinusTriplet = 110
	tp.Update()
}

func (tp *Params) Update() {
}

// Archive holds the spike traces and retained spike history for one
// postsynaptic neuron.
type Archive struct {

	// trace time constants.
	Trace Params `display:"inline"`

	// fast postsynaptic trace (o1) as of TLastSpike, including that
	// spike's +1 contribution.
	Kminus float32

	// slow (triplet) postsynaptic trace (o2) as of TLastSpike, including
	// that spike's +1 contribution.
	KminusTriplet float32

	// time of the most recent spike, in ms.
	TLastSpike float32

	// retained spike history, ascending in time.  Only maintained once at
	// least one plastic connection has registered.
	Hist []spike.HistEntry `display:"-"`

	// number of plastic connections registered to read the history.
	NIncoming int32

	// maximum transmission delay among registered connections, in ms.
	MaxDelay float32

	// fuzz tolerance for time comparisons in history queries.
	Eps float32 `default:"1e-06"`
}

func (ar *Archive) Defaults() {
	ar.Trace.Defaults()
	ar.Eps = 1e-6
}

// Init resets the traces and drops the history; registrations are kept.
func (ar *Archive) Init() {
	ar.Kminus = 0
	ar.KminusTriplet = 0
	ar.TLastSpike = 0
	ar.Hist = nil
}

// RegisterSTDP registers one plastic connection as a reader of this
// archive's history, from tFirstRead onward, with the given transmission
// delay.  Existing records at or before tFirstRead are marked as already
// read by it, so they remain prunable.
func (ar *Archive) RegisterSTDP(tFirstRead, delay float32) {
	ar.NIncoming++
	for i := range ar.Hist {
		if ar.Hist[i].Time > tFirstRead+ar.Eps {
			break
		}
		ar.Hist[i].Accesses++
	}
	ar.MaxDelay = math32.Max(ar.MaxDelay, delay)
}

// AddSpike records a spike at time t: both traces decay across the
// inter-spike interval and increment by 1 for this spike, and a history
// entry with the incremented trace values is appended.  With no registered
// readers only the spike time is tracked.  Fully-read history entries are
// pruned first, always keeping at least the most recent one.
func (ar *Archive) AddSpike(t float32) {
	if ar.NIncoming == 0 {
		ar.TLastSpike = t
		return
	}
	for len(ar.Hist) > 1 && ar.Hist[0].Accesses >= ar.NIncoming {
		ar.Hist = ar.Hist[1:]
	}
	ar.Kminus = ar.Kminus*math32.Exp((ar.TLastSpike-t)/ar.Trace.TauMinus) + 1
	ar.KminusTriplet = ar.KminusTriplet*math32.Exp((ar.TLastSpike-t)/ar.Trace.TauMinusTriplet) + 1
	ar.TLastSpike = t
	ar.Hist = append(ar.Hist, spike.HistEntry{Time: t, Kminus: ar.Kminus, KminusTriplet: ar.KminusTriplet})
}

// History returns the spike records with times in the half-open interval
// (t1, t2], ascending, and counts an access on each returned record.  The
// returned slice aliases the archive history and is valid until the next
// AddSpike.
func (ar *Archive) History(t1, t2 float32) []spike.HistEntry {
	n := len(ar.Hist)
	st := n
	for i := 0; i < n; i++ {
		if ar.Hist[i].Time > t1+ar.Eps {
			st = i
			break
		}
	}
	ed := st
	for ; ed < n; ed++ {
		if ar.Hist[ed].Time > t2+ar.Eps {
			break
		}
		ar.Hist[ed].Accesses++
	}
	return ar.Hist[st:ed]
}

// KValue returns the fast postsynaptic trace (o1) value at time t, by
// decaying the trace forward from the most recent spike at or before t.
// Returns 0 if there is no such spike in the history.
func (ar *Archive) KValue(t float32) float32 {
	for i := len(ar.Hist) - 1; i >= 0; i-- {
		h := &ar.Hist[i]
		if t-h.Time > ar.Eps {
			return h.Kminus * math32.Exp((h.Time-t)/ar.Trace.TauMinus)
		}
	}
	return 0
}
