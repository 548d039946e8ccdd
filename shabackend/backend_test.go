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

package shabackend

import "testing"

func TestGenericAlwaysValid(t *testing.T) {
	if !Generic.Valid() {
		t.Fatal("Generic must be valid on every architecture")
	}
}

func TestAvailableIncludesOnlyValidTags(t *testing.T) {
	for _, b := range Available() {
		if !b.Valid() {
			t.Errorf("Available() returned %s, which Valid() rejects", b)
		}
	}
}

func TestAvailableIncludesGeneric(t *testing.T) {
	found := false
	for _, b := range Available() {
		if b == Generic {
			found = true
		}
	}
	if !found {
		t.Fatal("Available() must always include Generic")
	}
}

func TestStringKnownValues(t *testing.T) {
	cases := map[Backend]string{
		Generic:       "GENERIC",
		AVX:           "AVX",
		AVX2:          "AVX2",
		AVX512:        "AVX512",
		X86ShaExt:     "X86_SHA_EXT",
		NEON:          "NEON",
		Aarch64ShaExt: "AARCH64_SHA_EXT",
	}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Errorf("Backend(%d).String() = %q, want %q", int(b), got, want)
		}
	}
}
