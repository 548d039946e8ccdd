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

//go:build !amd64 && !arm64

package sha512

import "github.com/SnellerInc/shax/shabackend"

// compressFunc returns the compress implementation for b. Neither
// architecture's vector backends are compiled in here, so every tag falls
// back to the generic implementation.
func compressFunc(shabackend.Backend) func(*state, []byte) {
	return compressGeneric
}
