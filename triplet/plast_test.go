// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package triplet

import (
	"testing"

	"cogentcore.org/core/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func cmpFloat(t *testing.T, msg string, got, cor float32) {
	t.Helper()
	if dif := math32.Abs(got - cor); dif > difTol {
		t.Errorf("%s: got: %v, cor: %v, dif: %v\n", msg, got, cor, dif)
	}
}

func TestFacilitate(t *testing.T) {
	tp := PlastParams{}
	tp.Defaults()

	// pair + triplet terms add to the magnitude
	w := tp.Facilitate(1, 0.5, 2)
	cor := 1 + 0.5*(tp.Aplus+tp.AplusTriplet*2)
	cmpFloat(t, "facilitate", w, cor)

	// zero presynaptic trace contributes nothing
	cmpFloat(t, "facilitate zero kplus", tp.Facilitate(1, 0, 3), 1)
}

func TestFacilitateClamp(t *testing.T) {
	tp := PlastParams{}
	tp.Defaults()
	tp.WMax = 2

	w := tp.Facilitate(1.9, 1e6, 1)
	cmpFloat(t, "facilitate clamp", w, 2)
	if w > tp.WMax {
		t.Errorf("facilitate exceeded WMax: %v > %v\n", w, tp.WMax)
	}
}

func TestDepress(t *testing.T) {
	tp := PlastParams{}
	tp.Defaults()

	w := tp.Depress(1, 0.5, 3)
	cor := 1 - 0.5*(tp.Aminus+tp.AminusTriplet*3)
	cmpFloat(t, "depress", w, cor)

	// zero postsynaptic trace means no depression
	cmpFloat(t, "depress zero kminus", tp.Depress(1, 0, 3), 1)
}

func TestDepressClamp(t *testing.T) {
	tp := PlastParams{}
	tp.Defaults()

	w := tp.Depress(0.001, 1e6, 0)
	cmpFloat(t, "depress clamp", w, 0)
	if w < 0 {
		t.Errorf("depress went below 0: %v\n", w)
	}
}

func TestLawsInhibitorySign(t *testing.T) {
	tp := PlastParams{}
	tp.Defaults()
	tp.WMax = -50

	w := tp.Facilitate(-1, 0.5, 2)
	if w > 0 {
		t.Errorf("facilitate flipped sign for inhibitory WMax: %v\n", w)
	}
	cmpFloat(t, "facilitate inhibitory", w, -(1 + 0.5*(tp.Aplus+tp.AplusTriplet*2)))

	w = tp.Facilitate(-49.9, 1e6, 1)
	cmpFloat(t, "facilitate inhibitory clamp", w, -50)

	w = tp.Depress(-1, 0.5, 3)
	if w > 0 {
		t.Errorf("depress flipped sign for inhibitory WMax: %v\n", w)
	}
	cmpFloat(t, "depress inhibitory", w, -(1 - 0.5*(tp.Aminus+tp.AminusTriplet*3)))

	// magnitude clamps at 0 but the sign stays negative
	w = tp.Depress(-0.001, 1e6, 0)
	cmpFloat(t, "depress inhibitory clamp", w, math32.Copysign(0, -1))
	if !math32.Signbit(w) {
		t.Errorf("depress lost negative sign at zero magnitude\n")
	}
}
