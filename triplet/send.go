// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triplet

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/emer/stdp/spike"
)

// ErrHistOrder indicates that the postsynaptic trace source returned a
// history record at or before this connection's previous presynaptic spike,
// violating the (t1, t2] range query contract.
var ErrHistOrder = errors.New("postsynaptic history record out of order")

// SendSpike processes one presynaptic spike at time tSpike (ms): replays the
// postsynaptic spike history since the previous presynaptic spike,
// facilitating the weight for each record (all-to-all interaction), applies
// one depression step at the delay-adjusted current time, updates the
// presynaptic traces, and forwards the spike event to the target with the
// updated weight.
//
// The entire update runs synchronously to completion; a spike is processed
// exactly once.  The only failure mode is ErrHistOrder, which means the
// trace source violated its contract: the event is dropped part-way through
// and the connection state must be considered corrupt.
func (cn *Conn) SendSpike(tSpike float32) error {
	dd := cn.Delay
	sy := &cn.Syn

	// postsynaptic spikes are delayed by dd, so they act at the synapse
	// that much later: query and replay in delay-adjusted time.
	hist := cn.Target.History(sy.TLastSpike-dd, tSpike-dd)
	for i := range hist {
		h := &hist[i]
		minusDt := sy.TLastSpike - (h.Time + dd)
		if minusDt >= -cn.Eps {
			return fmt.Errorf("triplet.Conn %s: record at %g vs last spike %g: %w",
				cn.Name, h.Time, sy.TLastSpike, ErrHistOrder)
		}
		// subtracting 1 yields the slow trace just prior to the
		// postsynaptic spike, so a spike never counts toward its own
		// triplet term.
		ky := h.KminusTriplet - 1
		sy.Wt = cn.Plast.Facilitate(sy.Wt, sy.KPlus*math32.Exp(minusDt/cn.Plast.TauPlus), ky)
	}

	// depression due to the new presynaptic spike: the slow trace decays
	// across the inter-spike interval first, and its own +1 increment
	// comes only after the depression step.
	sy.KPlusTriplet *= math32.Exp((sy.TLastSpike - tSpike) / cn.Plast.TauPlusTriplet)
	sy.Wt = cn.Plast.Depress(sy.Wt, cn.Target.KValue(tSpike-dd), sy.KPlusTriplet)

	sy.KPlusTriplet++
	sy.KPlus = sy.KPlus*math32.Exp((sy.TLastSpike-tSpike)/cn.Plast.TauPlus) + 1

	ev := spike.Event{Time: tSpike, Weight: sy.Wt, DelaySteps: cn.DelaySteps, RPort: cn.RPort}
	cn.Target.RecvSpike(&ev)

	sy.TLastSpike = tSpike
	return nil
}
