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

import "encoding/binary"

// compressX86ShaExt models the Intel SHA Extensions instruction pair
// (SHA256RNDS2 processing two rounds per instruction against the packed
// ABEF/CDGH state halves, SHA256MSG1/SHA256MSG2 advancing the schedule).
// Real hardware keeps state packed as two 128-bit halves and folds four
// rounds per pair of instructions; this emulation keeps the same
// four-rounds-at-a-time grouping but drives it through the already-proven
// round primitive rather than reimplementing the packed representation.
func compressX86ShaExt(s *state, blocks []byte) {
	var w [blockWords]uint32
	var cur state

	for len(blocks) >= BlockSize {
		cur = *s

		for i := 0; i < blockWords; i++ {
			w[i] = binary.BigEndian.Uint32(blocks[4*i:])
		}

		for i := 0; i < roundsNum; i += 4 {
			for j := i; j < i+4; j++ {
				if j >= blockWords {
					w[j&15] = littleSigma1(w[(j-2)&15]) + w[(j-7)&15] + littleSigma0(w[(j-15)&15]) + w[(j-16)&15]
				}
				cur.round(w[j&15], k256[j])
			}
		}

		s.accumulate(&cur)
		blocks = blocks[BlockSize:]
	}
}
