// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triplet

import (
	"fmt"
	"reflect"
)

// triplet.Synapse holds the plastic state for one connection.  It is mutated
// only by the update engine and by validated administrative sets.
type Synapse struct {

	// current synaptic efficacy.  |Wt| <= |WMax| and sign(Wt) == sign(WMax)
	// at all times.
	Wt float32

	// fast presynaptic trace (r1): decays with TauPlus, +1 per presynaptic
	// spike.  Never negative.
	KPlus float32

	// slow presynaptic trace (r2): decays with TauPlusTriplet, +1 per
	// presynaptic spike.  Never negative.
	KPlusTriplet float32

	// time of the most recently processed presynaptic spike, in ms.
	// 0 means no spike has been processed yet.
	TLastSpike float32
}

func (sy *Synapse) Defaults() {
	sy.Wt = 1
	sy.KPlus = 0
	sy.KPlusTriplet = 0
	sy.TLastSpike = 0
}

// SynapseVars are the synapse state variables accessible by name.
var SynapseVars = []string{"Wt", "KPlus", "KPlusTriplet", "TLastSpike"}

var SynapseVarsMap map[string]int

// PlastVars are the plasticity parameters accessible by name.
var PlastVars = []string{"TauPlus", "TauPlusTriplet", "Aplus", "AplusTriplet", "Aminus", "AminusTriplet", "WMax"}

var PlastVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
	PlastVarsMap = make(map[string]int, len(PlastVars))
	for i, v := range PlastVars {
		PlastVarsMap[v] = i
	}
}

func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// SynapseVarByName returns the index of the variable in the Synapse, or error
func SynapseVarByName(varNm string) (int, error) {
	i, ok := SynapseVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Synapse VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in SynapseVars list)
func (sy *Synapse) VarByIndex(idx int) float32 {
	v := reflect.ValueOf(*sy)
	return v.Field(idx).Interface().(float32)
}

// VarByName returns variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float32, error) {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return sy.VarByIndex(i), nil
}

func (sy *Synapse) SetVarByIndex(idx int, val float32) {
	v := reflect.ValueOf(sy)
	v.Elem().Field(idx).SetFloat(float64(val))
}

// SetVarByName sets synapse variable to given value.  Note: this does not
// check the state invariants -- use Conn.SetVarByName for validated sets.
func (sy *Synapse) SetVarByName(varNm string, val float32) error {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return err
	}
	sy.SetVarByIndex(i, val)
	return nil
}

func (tp *PlastParams) VarNames() []string {
	return PlastVars
}

// PlastVarByName returns the index of the variable in PlastParams, or error
func PlastVarByName(varNm string) (int, error) {
	i, ok := PlastVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("PlastParams VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in PlastVars list)
func (tp *PlastParams) VarByIndex(idx int) float32 {
	v := reflect.ValueOf(*tp)
	return v.Field(idx).Interface().(float32)
}

// VarByName returns variable by name, or error
func (tp *PlastParams) VarByName(varNm string) (float32, error) {
	i, err := PlastVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return tp.VarByIndex(i), nil
}

func (tp *PlastParams) SetVarByIndex(idx int, val float32) {
	v := reflect.ValueOf(tp)
	v.Elem().Field(idx).SetFloat(float64(val))
}

// SetVarByName sets the parameter to given value.  Note: this does not check
// the parameter invariants -- use Conn.SetVarByName for validated sets.
func (tp *PlastParams) SetVarByName(varNm string, val float32) error {
	i, err := PlastVarByName(varNm)
	if err != nil {
		return err
	}
	tp.SetVarByIndex(i, val)
	return nil
}
