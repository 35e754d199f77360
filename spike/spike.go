// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spike has the shared event and connection infrastructure for
event-driven spiking plasticity: the spike event and its receiver interface,
the postsynaptic history record consumed by plastic connections, the
per-connection delay / routing base, and the fixed-resolution simulation
clock.  All times are in milliseconds.
*/
package spike

// Event is one spike event in flight from a sending neuron to a receiving
// neuron.  The connection stamps in the weight and routing data at send time;
// the receiver is responsible for delivery semantics and never reports back.
type Event struct {

	// time of the presynaptic spike at the sender, in ms.
	Time float32

	// synaptic weight as of this spike, after any plasticity update.
	Weight float32

	// transmission delay in simulation resolution steps.
	DelaySteps int32

	// receptor port on the receiving neuron.
	RPort int32
}

// Receiver is anything that can accept a spike event.  Delivery outcome is
// not observable by the sender.
type Receiver interface {
	// RecvSpike accepts one spike event for delivery.
	RecvSpike(ev *Event)
}

// HistEntry is one postsynaptic spike record retained in the spike archive
// for replay by plastic connections.
type HistEntry struct {

	// time of the postsynaptic spike, in ms.
	Time float32

	// fast postsynaptic trace (o1) at this spike, including the spike's
	// own +1 contribution.
	Kminus float32

	// slow (triplet) postsynaptic trace (o2) at this spike, including the
	// spike's own +1 contribution.
	KminusTriplet float32

	// number of reading connections that have replayed past this entry --
	// drives history pruning.
	Accesses int32
}
