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

//go:build arm64

package sha256

import (
	"encoding/binary"

	"github.com/SnellerInc/shax/internal/simd"
)

// compressNEON is the arm64 counterpart of compressAVX: single-block,
// sigma computed through internal/simd's single-lane vector ops.
func compressNEON(s *state, blocks []byte) {
	var w [blockWords]uint32
	var cur state

	for len(blocks) >= BlockSize {
		cur = *s

		for i := 0; i < blockWords; i++ {
			w[i] = binary.BigEndian.Uint32(blocks[4*i:])
			cur.round(w[i], k256[i])
		}
		for i := blockWords; i < roundsNum; i++ {
			w[i&15] = sigma1Lane(w[(i-2)&15]) + w[(i-7)&15] + sigma0Lane(w[(i-15)&15]) + w[(i-16)&15]
			cur.round(w[i&15], k256[i])
		}

		s.accumulate(&cur)
		blocks = blocks[BlockSize:]
	}
}

func sigma0Lane(x uint32) uint32 {
	var a, t0, t1, t2, out [1]uint32
	a[0] = x
	simd.Ror(t0[:], a[:], 7, 32)
	simd.Ror(t1[:], a[:], 18, 32)
	simd.Shr(t2[:], a[:], 3)
	simd.Xor(out[:], t0[:], t1[:])
	simd.Xor(out[:], out[:], t2[:])
	return out[0]
}

func sigma1Lane(x uint32) uint32 {
	var a, t0, t1, t2, out [1]uint32
	a[0] = x
	simd.Ror(t0[:], a[:], 17, 32)
	simd.Ror(t1[:], a[:], 19, 32)
	simd.Shr(t2[:], a[:], 10)
	simd.Xor(out[:], t0[:], t1[:])
	simd.Xor(out[:], out[:], t2[:])
	return out[0]
}
