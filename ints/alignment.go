// Copyright (C) 2022 Sneller, Inc.
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

package ints

// IsAligned64 returns true if and only if v is an integer multiple of alignment.
func IsAligned64(v, alignment uint64) bool {
	return v%alignment == 0
}

// AlignDown64 returns v aligned down to a given alignment.
func AlignDown64(v, alignment uint64) uint64 {
	return (v / alignment) * alignment
}

// AlignUp64 returns v aligned up to a given alignment.
func AlignUp64(v, alignment uint64) uint64 {
	return ((v + alignment - 1) / alignment) * alignment
}
