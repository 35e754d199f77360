// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triplet

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/emer/stdp/spike"
)

// note: conn.go has the connection infrastructure; send.go has the
// event-driven update engine.

// TraceSource provides read access to the spike trace history of a
// postsynaptic neuron.  The neuron owns the traces; connections only read
// them, and the owner must not append concurrently with reads.
type TraceSource interface {

	// History returns the postsynaptic spike records with times in the
	// half-open interval (t1, t2], in ascending time order.  The returned
	// slice is valid until the next append.
	History(t1, t2 float32) []spike.HistEntry

	// KValue returns the fast postsynaptic trace (o1) value at time t.
	KValue(t float32) float32

	// RegisterSTDP informs the neuron that a plastic connection will read
	// its history from tFirstRead onward, with the given transmission
	// delay, so records must be retained accordingly.
	RegisterSTDP(tFirstRead, delay float32)
}

// Target is the postsynaptic side of a connection: it accepts the outgoing
// spike events and exposes the trace history the update engine replays.
type Target interface {
	spike.Receiver
	TraceSource
}

// triplet.Conn is one plastic connection between a presynaptic spike source
// and a postsynaptic target, updating its weight by the triplet STDP rule on
// each presynaptic spike.  A Conn is driven by a single presynaptic spike
// stream and is never re-entered concurrently; separate Conns may update in
// parallel as long as their shared target archive is not being appended to.
type Conn struct {
	spike.ConnBase

	// name of the connection, for parameter styling and reporting.
	Name string

	// space-separated class tags, for parameter styling.
	Class string

	// plasticity parameters.
	Plast PlastParams `display:"inline"`

	// plastic state: weight, presynaptic traces, last spike time.
	Syn Synapse

	// numerical tolerance for the history ordering check: postsynaptic
	// record times must precede the current presynaptic spike by more than
	// this amount.
	Eps float32 `default:"1e-06"`

	// postsynaptic target neuron.
	Target Target `display:"-" json:"-"`
}

// NewConn returns a new connection with default parameters, not yet
// connected to a target.
func NewConn(name string) *Conn {
	cn := &Conn{Name: name}
	cn.Defaults()
	return cn
}

func (cn *Conn) Defaults() {
	cn.ConnBase.Defaults()
	cn.Plast.Defaults()
	cn.Syn.Defaults()
	cn.Eps = 1e-6
}

// UpdateParams updates all params given any changes that might have been
// made to individual values.
func (cn *Conn) UpdateParams() {
	cn.Plast.Update()
	cn.UpdateSteps(spike.DefRes)
}

// params.Styler interface

func (cn *Conn) StyleType() string  { return "Conn" }
func (cn *Conn) StyleClass() string { return cn.Class }
func (cn *Conn) StyleName() string  { return cn.Name }
func (cn *Conn) StyleObject() any   { return cn }

// Connect sets the postsynaptic target and registers this connection with
// it, so that spike history is retained from (TLastSpike - Delay) onward.
func (cn *Conn) Connect(tgt Target) {
	cn.Target = tgt
	tgt.RegisterSTDP(cn.Syn.TLastSpike-cn.Delay, cn.Delay)
}

// Validate checks the connection state and parameter invariants: weight and
// WMax must have the same sign, and the presynaptic traces must be
// non-negative.  Returns the first violation found.
func (cn *Conn) Validate() error {
	if sign(cn.Syn.Wt) != sign(cn.Plast.WMax) {
		return fmt.Errorf("triplet.Conn %s: weight and WMax must have same sign", cn.Name)
	}
	if !(cn.Syn.KPlus >= 0) {
		return fmt.Errorf("triplet.Conn %s: state KPlus must be positive", cn.Name)
	}
	if !(cn.Syn.KPlusTriplet >= 0) {
		return fmt.Errorf("triplet.Conn %s: state KPlusTriplet must be positive", cn.Name)
	}
	return nil
}

// sign returns -1 for negative values and 1 otherwise, so that 0 counts as
// positive, matching the weight / WMax sign convention.
func sign(x float32) int {
	if x < 0 {
		return -1
	}
	return 1
}

// VarByName returns a state variable or parameter by name
// (see SynapseVars, PlastVars), or error.
func (cn *Conn) VarByName(varNm string) (float32, error) {
	if _, ok := SynapseVarsMap[varNm]; ok {
		return cn.Syn.VarByName(varNm)
	}
	if _, ok := PlastVarsMap[varNm]; ok {
		return cn.Plast.VarByName(varNm)
	}
	return 0, fmt.Errorf("triplet.Conn %s: variable name: %v not valid", cn.Name, varNm)
}

// SetVarByName sets a state variable or parameter by name, re-checking the
// connection invariants before committing.  On error no field is modified.
func (cn *Conn) SetVarByName(varNm string, val float32) error {
	return cn.SetVars(map[string]float32{varNm: val})
}

// SetVars sets multiple state variables and parameters in one
// administrative operation, validating the connection invariants once after
// all values are staged.  On any error nothing is modified, so related
// fields such as Wt and WMax can change sign together.
func (cn *Conn) SetVars(vars map[string]float32) error {
	stage := *cn
	for nm, val := range vars {
		var err error
		if _, ok := SynapseVarsMap[nm]; ok {
			err = stage.Syn.SetVarByName(nm, val)
		} else if _, ok := PlastVarsMap[nm]; ok {
			err = stage.Plast.SetVarByName(nm, val)
		} else {
			err = fmt.Errorf("triplet.Conn %s: variable name: %v not valid", cn.Name, nm)
		}
		if err != nil {
			return err
		}
	}
	if err := stage.Validate(); err != nil {
		return err
	}
	cn.Syn = stage.Syn
	cn.Plast = stage.Plast
	cn.UpdateParams()
	return nil
}

// AllParams returns a listing of all parameters in the connection.
func (cn *Conn) AllParams() string {
	str := "///////////////////////////////////////////////////\nConn: " + cn.Name + "\n"
	b, _ := json.MarshalIndent(&cn.Plast, "", " ")
	str += "Plast: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&cn.Syn, "", " ")
	str += "Syn: {\n " + JsonToParams(b)
	return str
}

// JsonToParams reformats json output to suitable params display output
func JsonToParams(b []byte) string {
	br := strings.Replace(string(b), `"`, ``, -1)
	br = strings.Replace(br, ",\n", "", -1)
	br = strings.Replace(br, "{\n", "{", -1)
	br = strings.Replace(br, "} ", "}\n  ", -1)
	br = strings.Replace(br, "\n }", " }", -1)
	br = strings.Replace(br, "\n  }\n", " }", -1)
	return br[1:] + "\n"
}
