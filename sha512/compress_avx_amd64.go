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

package sha512

import (
	"encoding/binary"

	"github.com/SnellerInc/shax/internal/simd"
)

// compressAVX is the single-block AVX-lane compress path, routing sigma
// through internal/simd's single-lane vector ops (see sha256's variant and
// SPEC_FULL.md, Open Question 1).
func compressAVX(s *state, blocks []byte) {
	var w [blockWords]uint64
	var cur state

	for len(blocks) >= BlockSize {
		cur = *s

		for i := 0; i < blockWords; i++ {
			w[i] = binary.BigEndian.Uint64(blocks[8*i:])
			cur.round(w[i], k512[i])
		}
		for i := blockWords; i < roundsNum; i++ {
			w[i&15] = sigma1Lane(w[(i-2)&15]) + w[(i-7)&15] + sigma0Lane(w[(i-15)&15]) + w[(i-16)&15]
			cur.round(w[i&15], k512[i])
		}

		s.accumulate(&cur)
		blocks = blocks[BlockSize:]
	}
}

func sigma0Lane(x uint64) uint64 {
	var a, t0, t1, t2, out [1]uint64
	a[0] = x
	simd.Ror(t0[:], a[:], 1, 64)
	simd.Ror(t1[:], a[:], 8, 64)
	simd.Shr(t2[:], a[:], 7)
	simd.Xor(out[:], t0[:], t1[:])
	simd.Xor(out[:], out[:], t2[:])
	return out[0]
}

func sigma1Lane(x uint64) uint64 {
	var a, t0, t1, t2, out [1]uint64
	a[0] = x
	simd.Ror(t0[:], a[:], 19, 64)
	simd.Ror(t1[:], a[:], 61, 64)
	simd.Shr(t2[:], a[:], 6)
	simd.Xor(out[:], t0[:], t1[:])
	simd.Xor(out[:], out[:], t2[:])
	return out[0]
}
