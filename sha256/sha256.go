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

import (
	"encoding/binary"

	"github.com/SnellerInc/shax/internal/memops"
	"github.com/SnellerInc/shax/ints"
	"github.com/SnellerInc/shax/shabackend"
)

// digest is the envelope's working context: chaining state, a two-block
// scratch buffer (only its first BlockSize bytes are handed to the compress
// function, one block per call, including both padding blocks), the
// buffered byte count, and the running message length used for the
// bit-length trailer.
type digest struct {
	h       state
	backend shabackend.Backend
	buf     [2 * BlockSize]byte
	nbuf    int
	length  uint64
}

func newDigest(backend shabackend.Backend) *digest {
	return &digest{h: iv, backend: backend}
}

// write absorbs p into the digest, compressing every full block it can
// assemble and buffering the remainder.
func (d *digest) write(p []byte) {
	d.length += uint64(len(p))
	f := compressFunc(d.backend)

	if d.nbuf > 0 {
		n := copy(d.buf[d.nbuf:BlockSize], p)
		d.nbuf += n
		p = p[n:]
		if d.nbuf == BlockSize {
			f(&d.h, d.buf[:BlockSize])
			d.nbuf = 0
		}
	}
	if len(p) >= BlockSize {
		n := int(ints.AlignDown64(uint64(len(p)), BlockSize))
		f(&d.h, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
}

// finalize applies the FIPS 180-4 padding (a single 0x80 byte, zeros, and
// a big-endian 64-bit bit-length trailer, spilling into a second block
// when the partial block has no room for the trailer), compresses the
// last one or two blocks, and emits the big-endian digest into dst.
func (d *digest) finalize(dst *[Size]byte) {
	bitLen := d.length * 8
	f := compressFunc(d.backend)

	d.buf[d.nbuf] = msgEndByte
	d.nbuf++
	if d.nbuf > BlockSize-lenFieldLen {
		for i := d.nbuf; i < BlockSize; i++ {
			d.buf[i] = 0
		}
		f(&d.h, d.buf[:BlockSize])
		d.nbuf = 0
	}
	for i := d.nbuf; i < BlockSize-lenFieldLen; i++ {
		d.buf[i] = 0
	}
	binary.BigEndian.PutUint64(d.buf[BlockSize-lenFieldLen:BlockSize], bitLen)
	f(&d.h, d.buf[:BlockSize])

	for i, v := range d.h {
		binary.BigEndian.PutUint32(dst[4*i:], v)
	}
}

func (d *digest) scrub() {
	memops.ZeroMemory(d.h[:])
	memops.ZeroMemory(d.buf[:])
	d.nbuf = 0
	d.length = 0
}

// Sum computes the SHA-256 digest of data using the given backend and
// writes it to dst. An invalid or architecturally unavailable backend tag
// falls back to shabackend.Generic rather than failing the call.
func Sum(dst *[Size]byte, data []byte, backend shabackend.Backend) {
	d := newDigest(backend)
	defer d.scrub()
	d.write(data)
	d.finalize(dst)
}

// Sum256 computes the SHA-256 digest of data using the portable generic
// backend, mirroring the ergonomics of crypto/sha256.Sum256.
func Sum256(data []byte) [Size]byte {
	var out [Size]byte
	Sum(&out, data, shabackend.Generic)
	return out
}
