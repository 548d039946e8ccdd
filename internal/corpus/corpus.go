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

// Package corpus generates the deterministic pseudorandom message corpus
// used by the sha256/sha512 cross-backend equivalence tests. Determinism
// matters more than unpredictability here: a seed reproduces the same
// corpus across machines and runs, so a failing case is reproducible from
// its seed and index alone.
package corpus

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// Generator is a siphash-keyed counter stream: Fill(buf) derives buf's
// bytes from siphash.Hash(k0, k1, counter), incrementing counter once per
// 8-byte word produced.
type Generator struct {
	k0, k1  uint64
	counter uint64
}

// New derives a generator's siphash key from seed, so the same seed always
// produces the same corpus.
func New(seed string) *Generator {
	return &Generator{
		k0: siphash.Hash(0, 0, []byte(seed)),
		k1: siphash.Hash(1, 0, []byte(seed)),
	}
}

// Fill fills buf with pseudorandom bytes.
func (g *Generator) Fill(buf []byte) {
	var word [8]byte
	for len(buf) > 0 {
		var ctr [8]byte
		binary.LittleEndian.PutUint64(ctr[:], g.counter)
		g.counter++
		binary.LittleEndian.PutUint64(word[:], siphash.Hash(g.k0, g.k1, ctr[:]))
		n := copy(buf, word[:])
		buf = buf[n:]
	}
}

// Message returns a pseudorandom message of length n along with a stable
// label (a version-5 UUID derived from the message content) suitable for
// naming a subtest, so a failure names a reproducible case rather than an
// opaque loop index.
func (g *Generator) Message(n int) (data []byte, label string) {
	data = make([]byte, n)
	g.Fill(data)
	return data, uuid.NewSHA1(uuid.NameSpaceOID, data).String()
}

// Lengths returns count pseudorandom lengths in [min, max], inclusive.
// The first entry is always min and, when count > 1, the last is always
// max; the rest are drawn uniformly from the range.
func (g *Generator) Lengths(count, min, max int) []int {
	out := make([]int, count)
	out[0] = min
	if count > 1 {
		out[count-1] = max
	}
	span := uint64(max - min + 1)
	for i := 1; i < count-1; i++ {
		var b [8]byte
		g.Fill(b[:])
		out[i] = min + int(binary.LittleEndian.Uint64(b[:])%span)
	}
	return out
}

// Pack zstd-compresses a batch of messages into a single blob, one
// length-prefixed record per message, for compact storage of a generated
// fixture corpus.
func Pack(messages [][]byte) ([]byte, error) {
	var raw bytes.Buffer
	for _, m := range messages {
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(m)))
		raw.Write(lenBuf[:])
		raw.Write(m)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw.Bytes(), nil), nil
}

// Unpack reverses Pack.
func Unpack(blob []byte) ([][]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, err
	}

	var out [][]byte
	r := bytes.NewReader(raw)
	for r.Len() > 0 {
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, err
		}
		n := binary.LittleEndian.Uint32(lenBuf[:])
		m := make([]byte, n)
		if _, err := io.ReadFull(r, m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
