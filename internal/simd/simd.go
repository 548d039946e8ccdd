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

// Package simd provides selected intrinsics for SIMD extension emulation.
//
// Every function here operates lane-wise over a slice standing in for a
// vector register: a 4/8/16-lane []uint32 plays the role of a 128/256/512-bit
// register holding 32-bit words, and a 2/4/8-lane []uint64 the 64-bit analog.
// There is no hardware backing these operations on any architecture; they
// exist so that code written against "vector lanes" is expressible, testable,
// and bit-identical to its scalar specification without depending on
// assembly this pack has no working example of (see SPEC_FULL.md, Open
// Question 1).
package simd

import "golang.org/x/exp/constraints"

// Word is the set of lane element types this package operates on.
type Word interface {
	constraints.Unsigned
}

// Add performs an elementwise modular add: dst[i] = a[i] + b[i].
func Add[T Word](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Xor performs an elementwise xor: dst[i] = a[i] ^ b[i].
func Xor[T Word](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// Ror rotates every lane of src right by n bits (lane width is bits).
func Ror[T Word](dst, src []T, n, bits uint) {
	for i := range dst {
		x := src[i]
		dst[i] = (x >> n) | (x << (bits - n))
	}
}

// Shr logically shifts every lane of src right by n bits.
func Shr[T Word](dst, src []T, n uint) {
	for i := range dst {
		dst[i] = src[i] >> n
	}
}

// Broadcast sets every lane of dst to v, modeling the single-scalar-load
// vbroadcast instructions batched kernels use to splat one round constant
// across every active lane.
func Broadcast[T Word](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}
