// Copyright (C) 2023 Sneller, Inc.
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

// Package memops implements accelerated memory block manipulation primitives.
package memops

import (
	"unsafe"
)

type Pointerless interface {
	// TODO: should be constraints.Integer | constraints.Float | a recursive composition of Pointerless, but Go doesn't support this concept.
}

// ZeroMemory fills buf with zeros. CAUTION: must be used only for T not containing pointers!
//
// This is the "secure_clean" primitive the hash envelope calls on every
// exit path to scrub its chaining state and block buffer (see spec.md
// §3/§4.5/§5). The compress kernels' per-block working copies and message
// schedules are not passed through it. It is deliberately routed through a
// noinline helper operating on an unsafe.Pointer so the compiler cannot
// prove the writes are dead and elide them, which is the failure mode a
// plain `for i := range buf { buf[i] = 0 }` at the caller's stack frame is
// prone to once the buffer's last use is the zeroing itself.
func ZeroMemory[T Pointerless](buf []T) {
	if len(buf) == 0 {
		return
	}
	zeroMemoryPointerless(unsafe.Pointer(unsafe.SliceData(buf)), uintptr(len(buf))*unsafe.Sizeof(buf[0]))
}

//go:noinline
func zeroMemoryPointerless(ptr unsafe.Pointer, n uintptr) {
	b := unsafe.Slice((*byte)(ptr), n)
	for i := range b {
		b[i] = 0
	}
}
