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

// Package sha512 computes FIPS 180-4 SHA-512 digests through a choice of
// backend compress implementations (generic scalar, vectorized, and
// hardware-assisted) selected explicitly by the caller. See
// github.com/SnellerInc/shax/shabackend for the backend tag enumeration.
//
// As with sha256, the public surface is one-shot: there is no reusable
// streaming hasher handle.
package sha512
