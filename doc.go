// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stdp is the overall repository for event-driven spike-timing-dependent
plasticity (STDP) code implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* triplet: the triplet STDP rule of Pfister & Gerstner (2006), as a
per-connection weight-update engine driven one presynaptic spike at a time,
with pair and triplet potentiation / depression terms.

* archive: the postsynaptic spike archive -- decaying fast and slow (triplet)
spike traces plus the retained per-spike history that plastic connections
replay between presynaptic spikes.

* neuron: a minimal leaky integrate-and-fire neuron that owns an archive,
receives spike events, and records its own spikes, closing the loop from
connection to postsynaptic side.

* spike: shared event and connection infrastructure -- the spike event,
receiver interface, history record, delay / routing base, and the
fixed-resolution simulation clock.

* examples: these compile into runnable programs.  examples/pairing runs the
classic pre / post pairing induction protocol across a range of spike
intervals and saves the resulting weight changes.
*/
package stdp
