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

package sha256

import "github.com/SnellerInc/shax/shabackend"

// compressFunc returns the compress implementation for b, falling back to
// the generic implementation for any tag that is not valid on this
// architecture (spec.md §1: invalid backend selections degrade to
// GENERIC rather than failing the call).
func compressFunc(b shabackend.Backend) func(*state, []byte) {
	switch b {
	case shabackend.AVX:
		return compressAVX
	case shabackend.AVX2:
		return compressAVX2
	case shabackend.AVX512:
		return compressAVX512
	case shabackend.X86ShaExt:
		return compressX86ShaExt
	default:
		return compressGeneric
	}
}
