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

import "encoding/binary"

// compressGeneric is the portable scalar compress function from spec.md
// §4.2: it processes one 64-byte block at a time, keeping only the rolling
// 16-word schedule window (no precomputed full 64-word schedule buffer).
func compressGeneric(s *state, blocks []byte) {
	var w [blockWords]uint32
	var cur state

	for len(blocks) >= BlockSize {
		cur = *s

		for i := 0; i < blockWords; i++ {
			w[i] = binary.BigEndian.Uint32(blocks[4*i:])
			cur.round(w[i], k256[i])
		}
		for i := blockWords; i < roundsNum; i++ {
			w[i&15] = littleSigma1(w[(i-2)&15]) + w[(i-7)&15] + littleSigma0(w[(i-15)&15]) + w[(i-16)&15]
			cur.round(w[i&15], k256[i])
		}

		s.accumulate(&cur)
		blocks = blocks[BlockSize:]
	}
}
