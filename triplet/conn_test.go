// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triplet

import (
	"testing"

	"github.com/emer/emergent/v2/params"
)

func TestDefaults(t *testing.T) {
	cn := NewConn("test")

	cor := map[string]float32{
		"Wt":             1,
		"KPlus":          0,
		"KPlusTriplet":   0,
		"TLastSpike":     0,
		"TauPlus":        16.8,
		"TauPlusTriplet": 101,
		"Aplus":          5e-10,
		"AplusTriplet":   6.2e-3,
		"Aminus":         7e-3,
		"AminusTriplet":  2.3e-4,
		"WMax":           100,
	}
	for nm, cv := range cor {
		v, err := cn.VarByName(nm)
		if err != nil {
			t.Fatal(err)
		}
		cmpFloat(t, nm, v, cv)
	}
	cmpFloat(t, "Delay", cn.Delay, 1)
	cmpFloat(t, "Eps", cn.Eps, 1e-6)
}

func TestVarByNameUnknown(t *testing.T) {
	cn := NewConn("test")
	if _, err := cn.VarByName("Froboz"); err == nil {
		t.Error("expected error for unknown variable")
	}
	if err := cn.SetVarByName("Froboz", 1); err == nil {
		t.Error("expected error for unknown variable")
	}
}

func TestSetVarValidation(t *testing.T) {
	cn := NewConn("test")

	if err := cn.SetVarByName("KPlus", -1); err == nil {
		t.Error("expected error for negative KPlus")
	}
	cmpFloat(t, "KPlus unchanged after failed set", cn.Syn.KPlus, 0)

	if err := cn.SetVarByName("KPlusTriplet", -0.5); err == nil {
		t.Error("expected error for negative KPlusTriplet")
	}
	cmpFloat(t, "KPlusTriplet unchanged after failed set", cn.Syn.KPlusTriplet, 0)

	// flipping only one of Wt / WMax violates the sign invariant
	if err := cn.SetVarByName("WMax", -50); err == nil {
		t.Error("expected sign error setting WMax negative alone")
	}
	cmpFloat(t, "WMax unchanged after failed set", cn.Plast.WMax, 100)

	if err := cn.SetVarByName("Wt", -1); err == nil {
		t.Error("expected sign error setting Wt negative alone")
	}
	cmpFloat(t, "Wt unchanged after failed set", cn.Syn.Wt, 1)
}

func TestSetVarsAtomic(t *testing.T) {
	cn := NewConn("test")

	// both sign-coupled fields change together
	if err := cn.SetVars(map[string]float32{"WMax": -50, "Wt": -2}); err != nil {
		t.Fatal(err)
	}
	cmpFloat(t, "WMax", cn.Plast.WMax, -50)
	cmpFloat(t, "Wt", cn.Syn.Wt, -2)

	// one bad value rolls back the whole batch
	err := cn.SetVars(map[string]float32{"Wt": -10, "KPlus": -1})
	if err == nil {
		t.Fatal("expected error for negative KPlus in batch")
	}
	cmpFloat(t, "Wt unchanged after failed batch", cn.Syn.Wt, -2)
	cmpFloat(t, "KPlus unchanged after failed batch", cn.Syn.KPlus, 0)
}

var ParamSets = params.Sets{
	"Base": {
		{Sel: "Conn", Desc: "hippocampal minimal triplet model",
			Params: params.Params{
				"Conn.Plast.TauPlus":        "16.8",
				"Conn.Plast.TauPlusTriplet": "946",
				"Conn.Plast.Aplus":          "0.0061",
				"Conn.Plast.AplusTriplet":   "0.0067",
				"Conn.Plast.Aminus":         "0.0016",
				"Conn.Plast.AminusTriplet":  "0.0014",
			}},
	},
}

func TestApplyParams(t *testing.T) {
	cn := NewConn("test")
	app, err := ParamSets["Base"].Apply(cn, false)
	if err != nil {
		t.Fatal(err)
	}
	if !app {
		t.Fatal("params sheet did not apply")
	}
	cmpFloat(t, "TauPlusTriplet", cn.Plast.TauPlusTriplet, 946)
	cmpFloat(t, "Aplus", cn.Plast.Aplus, 0.0061)
	cmpFloat(t, "AminusTriplet", cn.Plast.AminusTriplet, 0.0014)
}
