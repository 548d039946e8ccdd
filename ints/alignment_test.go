// Copyright (C) 2022 Sneller, Inc.
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

package ints

import "testing"

func TestIsAligned64(t *testing.T) {
	cases := []struct {
		v, alignment uint64
		want         bool
	}{
		{0, 64, true},
		{64, 64, true},
		{63, 64, false},
		{128, 64, true},
		{65, 64, false},
	}
	for _, c := range cases {
		if got := IsAligned64(c.v, c.alignment); got != c.want {
			t.Errorf("IsAligned64(%d, %d) = %v, want %v", c.v, c.alignment, got, c.want)
		}
	}
}

func TestAlignUp64(t *testing.T) {
	if got := AlignUp64(1, 64); got != 64 {
		t.Errorf("AlignUp64(1, 64) = %d, want 64", got)
	}
	if got := AlignUp64(64, 64); got != 64 {
		t.Errorf("AlignUp64(64, 64) = %d, want 64", got)
	}
	if got := AlignUp64(65, 64); got != 128 {
		t.Errorf("AlignUp64(65, 64) = %d, want 128", got)
	}
}

func TestAlignDown64(t *testing.T) {
	cases := []struct{ v, alignment, want uint64 }{
		{0, 64, 0},
		{63, 64, 0},
		{64, 64, 64},
		{129, 64, 128},
	}
	for _, c := range cases {
		if got := AlignDown64(c.v, c.alignment); got != c.want {
			t.Errorf("AlignDown64(%d, %d) = %d, want %d", c.v, c.alignment, got, c.want)
		}
	}
}
