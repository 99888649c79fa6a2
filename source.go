// Copyright 2026 The shakerng Authors
// This file is part of the shakerng library.
//
// The shakerng library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The shakerng library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the shakerng library. If not, see <http://www.gnu.org/licenses/>.

package shakerng

import (
	"encoding/binary"
	mrand "math/rand"
)

// Read fills p with random bytes and never fails. It makes RngState an
// io.Reader so it can be passed anywhere a randomness stream is expected,
// e.g. as the rand parameter of crypto key generation.
func (r *RngState) Read(p []byte) (int, error) {
	r.FillRandomBytes(p)
	return len(p), nil
}

// Uint64 returns a random 64-bit value. One permutation call and one erasure
// per value makes this slow compared to bulk generation; prefer
// FillRandomBytes for anything beyond occasional use.
func (r *RngState) Uint64() uint64 {
	v := binary.LittleEndian.Uint64(r.s.state[:8])
	r.s.permute(&r.s.state)
	r.s.eraseForForwardSecurity()
	return v
}

// Source adapts the generator to math/rand.Source64, so it can back a
// *math/rand.Rand for the convenience routines (Intn, Shuffle, Perm, ...).
// The adapter shares the RngState, it does not copy it.
func Source(r *RngState) mrand.Source64 {
	return &randSource{rng: r}
}

type randSource struct {
	rng *RngState
}

func (s *randSource) Uint64() uint64 {
	return s.rng.Uint64()
}

func (s *randSource) Int63() int64 {
	return int64(s.rng.Uint64() &^ (1 << 63))
}

// Seed is a no-op. Replacing the state with a value derived from a single
// int64 would discard the entropy pool; use RngState.Seed instead, which
// mixes rather than replaces.
func (s *randSource) Seed(int64) {}
