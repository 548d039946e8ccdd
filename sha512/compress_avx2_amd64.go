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

// compressAVX2 batches two blocks' message-schedule expansion into 2-wide
// vector lanes (see sha256's compressAVX2 for the rationale), then replays
// the actual rounds scalar-only, one block at a time.
func compressAVX2(s *state, blocks []byte) {
	for len(blocks) >= 2*BlockSize {
		var w0, w1 [roundsNum]uint64
		for i := 0; i < blockWords; i++ {
			w0[i] = binary.BigEndian.Uint64(blocks[8*i:])
			w1[i] = binary.BigEndian.Uint64(blocks[BlockSize+8*i:])
		}
		expandSchedule2(&w0, &w1)

		cur := *s
		for i := 0; i < roundsNum; i++ {
			cur.round(w0[i], k512x2[2*i])
		}
		s.accumulate(&cur)

		cur = *s
		for i := 0; i < roundsNum; i++ {
			cur.round(w1[i], k512x2[2*i+1])
		}
		s.accumulate(&cur)

		blocks = blocks[2*BlockSize:]
	}
	if len(blocks) > 0 {
		compressAVX(s, blocks)
	}
}

func expandSchedule2(w0, w1 *[roundsNum]uint64) {
	var a, t0, t1, t2, s0, s1, sum [2]uint64
	for i := blockWords; i < roundsNum; i++ {
		a[0], a[1] = w0[i-2], w1[i-2]
		simd.Ror(t0[:], a[:], 19, 64)
		simd.Ror(t1[:], a[:], 61, 64)
		simd.Shr(t2[:], a[:], 6)
		simd.Xor(s1[:], t0[:], t1[:])
		simd.Xor(s1[:], s1[:], t2[:])

		a[0], a[1] = w0[i-15], w1[i-15]
		simd.Ror(t0[:], a[:], 1, 64)
		simd.Ror(t1[:], a[:], 8, 64)
		simd.Shr(t2[:], a[:], 7)
		simd.Xor(s0[:], t0[:], t1[:])
		simd.Xor(s0[:], s0[:], t2[:])

		var w7, w16 [2]uint64
		w7[0], w7[1] = w0[i-7], w1[i-7]
		w16[0], w16[1] = w0[i-16], w1[i-16]

		simd.Add(sum[:], s1[:], w7[:])
		simd.Add(sum[:], sum[:], s0[:])
		simd.Add(sum[:], sum[:], w16[:])

		w0[i], w1[i] = sum[0], sum[1]
	}
}
