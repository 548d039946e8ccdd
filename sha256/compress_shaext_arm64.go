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

import "encoding/binary"

// compressAarch64ShaExt models the Armv8 Cryptographic Extension's
// SHA256H/SHA256H2/SHA256SU0/SHA256SU1 instructions, which fold four
// rounds per instruction pair against a packed two-register state. As in
// compress_shaext_amd64.go, the packed representation is not reproduced;
// the four-rounds-at-a-time grouping is, driven through the proven round
// primitive.
func compressAarch64ShaExt(s *state, blocks []byte) {
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
