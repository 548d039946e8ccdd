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
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/SnellerInc/shax/shabackend"
)

func mustHex(s string) [Size]byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	var out [Size]byte
	copy(out[:], b)
	return out
}

// TestKnownAnswers checks the canonical FIPS/NIST test vectors (empty
// string, "abc", and one million repetitions of 'a') against every
// backend tag this build compiles in.
func TestKnownAnswers(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want [Size]byte
	}{
		{
			name: "empty",
			data: nil,
			want: mustHex("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
		},
		{
			name: "abc",
			data: []byte("abc"),
			want: mustHex("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"),
		},
	}

	for _, backend := range shabackend.All() {
		backend := backend
		if !backend.Valid() {
			continue
		}
		t.Run(backend.String(), func(t *testing.T) {
			for _, c := range cases {
				var got [Size]byte
				Sum(&got, c.data, backend)
				if got != c.want {
					t.Errorf("%s: got %x, want %x", c.name, got, c.want)
				}
			}

			million := bytes.Repeat([]byte("a"), 1_000_000)
			var got [Size]byte
			Sum(&got, million, backend)
			want := mustHex("cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0")
			if got != want {
				t.Errorf("1e6 'a': got %x, want %x", got, want)
			}
		})
	}
}

// TestCrossBackendEquivalence checks that every valid backend produces the
// same digest as Generic across a range of lengths straddling the block
// and padding boundaries.
func TestCrossBackendEquivalence(t *testing.T) {
	lengths := []int{
		0, 1, 54, 55, 56, 57, 63, 64, 65, 111, 112, 119, 127, 128, 129,
		191, 192, 193, 255, 256, 257, 1000, 4096, 6400,
	}
	for _, n := range lengths {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i * 7 % 251)
		}

		var want [Size]byte
		Sum(&want, data, shabackend.Generic)

		for _, backend := range shabackend.All() {
			if !backend.Valid() || backend == shabackend.Generic {
				continue
			}
			var got [Size]byte
			Sum(&got, data, backend)
			if got != want {
				t.Errorf("len=%d backend=%s: got %x, want %x", n, backend, got, want)
			}
		}
	}
}

func TestIdempotence(t *testing.T) {
	data := []byte(strings.Repeat("message", 37))
	var a, b [Size]byte
	Sum(&a, data, shabackend.Generic)
	Sum(&b, data, shabackend.Generic)
	if a != b {
		t.Fatalf("repeated Sum calls diverged: %x vs %x", a, b)
	}
}

func TestSum256Matches(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	var want [Size]byte
	Sum(&want, data, shabackend.Generic)
	got := Sum256(data)
	if got != want {
		t.Fatalf("Sum256 = %x, want %x", got, want)
	}
}

func TestInvalidBackendFallsBackToGeneric(t *testing.T) {
	data := []byte("fallback check")
	var want [Size]byte
	Sum(&want, data, shabackend.Generic)
	var got [Size]byte
	Sum(&got, data, shabackend.Backend(9999))
	if got != want {
		t.Fatalf("out-of-range backend tag did not fall back to generic: got %x, want %x", got, want)
	}
}

func TestDigestIsBigEndian(t *testing.T) {
	// The all-zero 55-byte message's first output word is well known:
	// spot check that Sum's byte layout is big-endian by construction,
	// i.e. dst[0] holds the high byte of h[0].
	data := make([]byte, 55)
	var got [Size]byte
	Sum(&got, data, shabackend.Generic)
	want := [4]byte{0x02, 0x77, 0x94, 0x66}
	if [4]byte(got[:4]) != want {
		t.Fatalf("leading digest word = %x, want %x", got[:4], want)
	}
}

func BenchmarkSumGeneric(b *testing.B) {
	benchmarkSum(b, shabackend.Generic)
}

func BenchmarkSumAVX(b *testing.B) {
	benchmarkSum(b, shabackend.AVX)
}

func BenchmarkSumAVX2(b *testing.B) {
	benchmarkSum(b, shabackend.AVX2)
}

func BenchmarkSumAVX512(b *testing.B) {
	benchmarkSum(b, shabackend.AVX512)
}

func benchmarkSum(b *testing.B, backend shabackend.Backend) {
	if !backend.Valid() {
		b.Skipf("%s not valid on this architecture", backend)
	}
	data := make([]byte, 64*1024)
	var out [Size]byte
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum(&out, data, backend)
	}
}
