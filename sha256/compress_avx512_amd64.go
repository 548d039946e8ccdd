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

import (
	"encoding/binary"

	"github.com/SnellerInc/shax/internal/simd"
)

// compressAVX512 is compressAVX2's four-block sibling: one 512-bit-wide
// schedule expansion in place of two 256-bit-wide ones. Trailing blocks
// that don't fill a quad fall back to compressAVX2, which in turn falls
// back to compressAVX for a final odd block.
func compressAVX512(s *state, blocks []byte) {
	for len(blocks) >= 4*BlockSize {
		var w [4][roundsNum]uint32
		for b := 0; b < 4; b++ {
			for i := 0; i < blockWords; i++ {
				w[b][i] = binary.BigEndian.Uint32(blocks[b*BlockSize+4*i:])
			}
		}
		expandSchedule4(&w)

		// k256x4 is this kernel's batched-load constant layout: lane b of
		// each quad equals k256[i], read through the duplicated table so
		// the quad load is real rather than a derived-but-unused table.
		for b := 0; b < 4; b++ {
			cur := *s
			for i := 0; i < roundsNum; i++ {
				cur.round(w[b][i], k256x4[4*i+b])
			}
			s.accumulate(&cur)
		}

		blocks = blocks[4*BlockSize:]
	}
	if len(blocks) > 0 {
		compressAVX2(s, blocks)
	}
}

// expandSchedule4 fills w[b][16:64] for all four blocks given w[b][0:16]
// already populated, computing each schedule word across all four blocks
// together as a 4-lane vector.
func expandSchedule4(w *[4][roundsNum]uint32) {
	var a, t0, t1, t2, s0, s1, w7, w16, sum [4]uint32
	for i := blockWords; i < roundsNum; i++ {
		for b := 0; b < 4; b++ {
			a[b] = w[b][i-2]
		}
		simd.Ror(t0[:], a[:], 17, 32)
		simd.Ror(t1[:], a[:], 19, 32)
		simd.Shr(t2[:], a[:], 10)
		simd.Xor(s1[:], t0[:], t1[:])
		simd.Xor(s1[:], s1[:], t2[:])

		for b := 0; b < 4; b++ {
			a[b] = w[b][i-15]
		}
		simd.Ror(t0[:], a[:], 7, 32)
		simd.Ror(t1[:], a[:], 18, 32)
		simd.Shr(t2[:], a[:], 3)
		simd.Xor(s0[:], t0[:], t1[:])
		simd.Xor(s0[:], s0[:], t2[:])

		for b := 0; b < 4; b++ {
			w7[b] = w[b][i-7]
			w16[b] = w[b][i-16]
		}

		simd.Add(sum[:], s1[:], w7[:])
		simd.Add(sum[:], sum[:], s0[:])
		simd.Add(sum[:], sum[:], w16[:])

		for b := 0; b < 4; b++ {
			w[b][i] = sum[b]
		}
	}
}
