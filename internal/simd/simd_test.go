// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package simd

import "testing"

func TestAdd(t *testing.T) {
	a := []uint32{1, 2, 3, 4}
	b := []uint32{10, 20, 30, 40}
	dst := make([]uint32, 4)
	Add(dst, a, b)
	want := []uint32{11, 22, 33, 44}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("lane %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestXor(t *testing.T) {
	a := []uint32{0xff00ff00, 0x0f0f0f0f}
	b := []uint32{0x00ff00ff, 0xf0f0f0f0}
	dst := make([]uint32, 2)
	Xor(dst, a, b)
	if dst[0] != 0xffffffff || dst[1] != 0xffffffff {
		t.Fatalf("got %08x %08x, want all-ones lanes", dst[0], dst[1])
	}
}

func TestRor(t *testing.T) {
	src := []uint32{1}
	dst := make([]uint32, 1)
	Ror(dst, src, 1, 32)
	if dst[0] != 0x80000000 {
		t.Fatalf("Ror(1, 1, 32) = %#x, want 0x80000000", dst[0])
	}
}

func TestShr(t *testing.T) {
	src := []uint64{0x8000000000000000}
	dst := make([]uint64, 1)
	Shr(dst, src, 63)
	if dst[0] != 1 {
		t.Fatalf("Shr(1<<63, 63) = %d, want 1", dst[0])
	}
}

func TestBroadcast(t *testing.T) {
	dst := make([]uint32, 4)
	Broadcast(dst, uint32(0xdeadbeef))
	for i, v := range dst {
		if v != 0xdeadbeef {
			t.Fatalf("lane %d: got %#x, want 0xdeadbeef", i, v)
		}
	}
}
