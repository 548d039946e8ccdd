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

package shabackend

import "golang.org/x/sys/cpu"

// Valid reports whether b is compiled in on this architecture.
func (b Backend) Valid() bool {
	switch b {
	case Generic, NEON, Aarch64ShaExt:
		return true
	default:
		return false
	}
}

// Available lists the backends that both Valid() and the running CPU's
// advertised feature set support. Informational only, see valid_amd64.go.
func Available() []Backend {
	out := []Backend{Generic, NEON}
	if cpu.ARM64.HasSHA2 {
		out = append(out, Aarch64ShaExt)
	}
	return out
}
