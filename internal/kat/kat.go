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

// Package kat loads known-answer test vectors from a vectors.yaml file,
// the same convention the teacher uses for definition.yaml-style fixtures.
package kat

import (
	"encoding/hex"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Vector is one known-answer case: a hex-encoded message and its expected
// hex-encoded digest.
type Vector struct {
	Name   string `json:"name"`
	Input  string `json:"input"`
	Digest string `json:"digest"`
}

// Load reads and parses a vectors.yaml file.
func Load(path string) ([]Vector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var vectors []Vector
	if err := yaml.Unmarshal(raw, &vectors); err != nil {
		return nil, fmt.Errorf("kat: parsing %s: %w", path, err)
	}
	return vectors, nil
}

// Bytes decodes the vector's hex-encoded input message.
func (v Vector) Bytes() ([]byte, error) {
	return hex.DecodeString(v.Input)
}

// Want decodes the vector's hex-encoded expected digest.
func (v Vector) Want() ([]byte, error) {
	return hex.DecodeString(v.Digest)
}
