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

package sha512

import "math/bits"

// bigSigma0 is Sigma0 from spec.md §4.1: ROTR(x,28) ^ ROTR(x,34) ^ ROTR(x,39).
func bigSigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
}

// bigSigma1 is Sigma1: ROTR(x,14) ^ ROTR(x,18) ^ ROTR(x,41).
func bigSigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
}

// littleSigma0 is sigma0: ROTR(x,1) ^ ROTR(x,8) ^ (x>>7).
func littleSigma0(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
}

// littleSigma1 is sigma1: ROTR(x,19) ^ ROTR(x,61) ^ (x>>6).
func littleSigma1(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
}

func ch(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

func maj(x, y, z uint64) uint64 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// state is the eight working words a..h, in that order.
type state [8]uint64

// round advances s by one round given the schedule word w and round
// constant k, using the same rotating-state-slot encoding as sha256.state.
func (s *state) round(w, k uint64) {
	t1 := s[7] + bigSigma1(s[4]) + ch(s[4], s[5], s[6]) + k + w
	t2 := bigSigma0(s[0]) + maj(s[0], s[1], s[2])
	s[7] = s[6]
	s[6] = s[5]
	s[5] = s[4]
	s[4] = s[3] + t1
	s[3] = s[2]
	s[2] = s[1]
	s[1] = s[0]
	s[0] = t1 + t2
}

// accumulate adds src elementwise into the chaining state.
func (s *state) accumulate(src *state) {
	for i := range s {
		s[i] += src[i]
	}
}
