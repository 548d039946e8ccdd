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

package shabackend

// Valid reports whether b is compiled in on this architecture. Neither
// architecture's vector or hardware-assisted backends are available; only
// the generic implementation is.
func (b Backend) Valid() bool {
	return b == Generic
}

// Available lists the backends valid on this architecture. Informational
// only, see valid_amd64.go.
func Available() []Backend {
	return []Backend{Generic}
}
