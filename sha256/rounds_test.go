// Copyright (C) 2024 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package sha256

import "testing"

// TestRoundMatchesReference re-derives one round the textbook way (renaming
// a..h each round rather than rotating state slots) and checks it agrees
// with the rotating-slot encoding state.round uses.
func TestRoundMatchesReference(t *testing.T) {
	a, b, c, d, e, f, g, h := uint32(1), uint32(2), uint32(3), uint32(4), uint32(5), uint32(6), uint32(7), uint32(8)
	w, k := uint32(0x9f86d081), uint32(0x428a2f98)

	t1 := h + bigSigma1(e) + ch(e, f, g) + k + w
	t2 := bigSigma0(a) + maj(a, b, c)
	wantH, wantG, wantF, wantE := g, f, e, d+t1
	wantD, wantC, wantB, wantA := c, b, a, t1+t2

	s := state{a, b, c, d, e, f, g, h}
	s.round(w, k)

	got := state{wantA, wantB, wantC, wantD, wantE, wantF, wantG, wantH}
	if s != got {
		t.Fatalf("round() = %#v, want %#v", s, got)
	}
}

func TestAccumulate(t *testing.T) {
	a := state{1, 2, 3, 4, 5, 6, 7, 8}
	b := state{10, 20, 30, 40, 50, 60, 70, 80}
	a.accumulate(&b)
	want := state{11, 22, 33, 44, 55, 66, 77, 88}
	if a != want {
		t.Fatalf("accumulate = %#v, want %#v", a, want)
	}
}
