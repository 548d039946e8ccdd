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

//go:build amd64

package shabackend

import "golang.org/x/sys/cpu"

// Valid reports whether b is compiled in on this architecture.
func (b Backend) Valid() bool {
	switch b {
	case Generic, AVX, AVX2, AVX512, X86ShaExt:
		return true
	default:
		return false
	}
}

// Available lists the backends that both Valid() and the running CPU's
// advertised feature set support. This is informational only: nothing in
// sha256 or sha512 consults it, per spec.md §1/§9 ("the caller names the
// backend"). A caller may use it to decide which tag to pass.
func Available() []Backend {
	out := []Backend{Generic}
	if cpu.X86.HasAVX {
		out = append(out, AVX)
	}
	if cpu.X86.HasAVX2 {
		out = append(out, AVX2)
	}
	if cpu.X86.HasAVX512F {
		out = append(out, AVX512)
	}
	if cpu.X86.HasSHA {
		out = append(out, X86ShaExt)
	}
	return out
}
