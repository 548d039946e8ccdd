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

import (
	"bytes"
	"testing"

	"github.com/SnellerInc/shax/internal/kat"
	"github.com/SnellerInc/shax/shabackend"
)

func TestVectorsYAML(t *testing.T) {
	vectors, err := kat.Load("testdata/vectors.yaml")
	if err != nil {
		t.Fatalf("loading vectors: %v", err)
	}
	if len(vectors) == 0 {
		t.Fatal("no vectors loaded")
	}

	for _, v := range vectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			data, err := v.Bytes()
			if err != nil {
				t.Fatalf("decoding input: %v", err)
			}
			want, err := v.Want()
			if err != nil {
				t.Fatalf("decoding digest: %v", err)
			}
			var got [Size]byte
			Sum(&got, data, shabackend.Generic)
			if !bytes.Equal(got[:], want) {
				t.Errorf("got %x, want %x", got, want)
			}
		})
	}
}
