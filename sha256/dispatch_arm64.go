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

import "github.com/SnellerInc/shax/shabackend"

// compressFunc returns the compress implementation for b, falling back to
// the generic implementation for any tag that is not valid on this
// architecture.
func compressFunc(b shabackend.Backend) func(*state, []byte) {
	switch b {
	case shabackend.NEON:
		return compressNEON
	case shabackend.Aarch64ShaExt:
		return compressAarch64ShaExt
	default:
		return compressGeneric
	}
}
