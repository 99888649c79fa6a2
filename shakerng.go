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

// Package shakerng implements a cryptographically secure fast-erasure
// (forward-secure) pseudo-random number generator based on the sponge/duplex
// construction over the Keccak-f[1600] permutation.
//
// A plain duplex sponge is not forward secure: Keccak-f[1600] is efficiently
// invertible, so an attacker holding the final state can walk the permutation
// backwards and recover every block emitted since the last seed. This
// generator therefore splits the capacity in two. One half is erased after
// every operation, which destroys the information needed to invert; the other
// half is never touched and keeps collecting entropy, so a single captured
// output block does not determine future output either.
//
// Usage:
//
//	rng, err := shakerng.NewFromEntropy()
//	if err != nil {
//		// entropy source failed; do not fall back to a weaker seed
//	}
//	defer rng.Destroy()
//	key := rng.RandomBytes(32)
//
// The generator is deterministic for fixed seed bytes but not portable:
// output may change between versions of this library. It is not a hash
// function and must not be used as one. An RngState must be owned by a single
// goroutine; wrap it in external locking if it has to be shared.
package shakerng

import (
	"crypto/rand"
	"io"

	"github.com/codahale/permutation-city/keccak"
)

// RngState is the generator. It owns a single permutation state buffer and
// mutates it in place. After every public operation the erasable capacity
// area of the buffer holds only zero bytes and the reserved capacity has
// never been copied out.
//
// With high entropy seed material, i.e. (almost) uniform random bytes, at
// least 16 bytes are needed to properly seed the generator.
type RngState struct {
	s sponge
}

// EntropyError reports a failure of the entropy source consulted during
// construction or reseeding. The generator never substitutes fallback
// randomness on such a failure; the error is surfaced and no partially
// seeded state is observable.
type EntropyError struct {
	Err error
}

func (e *EntropyError) Error() string {
	return "shakerng: entropy source failed: " + e.Err.Error()
}

func (e *EntropyError) Unwrap() error {
	return e.Err
}

// New creates a generator seeded with the given bytes, absorbed over an
// all-zero state. It cannot fail. The output is fully determined by seed, so
// callers wanting unpredictable output must supply high entropy material;
// prefer NewFromEntropy for that.
func New(seed []byte) *RngState {
	r := &RngState{s: sponge{permute: keccak.F1600}}
	r.Seed(seed)
	return r
}

// NewFromEntropy creates a generator seeded with one rate-sized block of
// randomness from the operating system. This is the preferred constructor.
func NewFromEntropy() (*RngState, error) {
	return NewFromReader(rand.Reader)
}

// NewFromReader creates a generator seeded with RateSize bytes read from src.
// A short or failed read aborts construction with an EntropyError wrapping
// the reader's error.
func NewFromReader(src io.Reader) (*RngState, error) {
	r := &RngState{s: sponge{permute: keccak.F1600}}
	if err := r.SeedFromReader(src); err != nil {
		return nil, err
	}
	return r, nil
}

// Seed hashes the given bytes into the current state. The previous state is
// mixed with, not replaced, so seeding can only add entropy. Initial seeding
// and reseeding are the same operation.
func (r *RngState) Seed(seed []byte) {
	for len(seed) >= RateSize {
		r.s.absorbBlock(seed[:RateSize])
		seed = seed[RateSize:]
	}
	r.s.absorbLastBlock(seed)
	r.s.eraseForForwardSecurity()
}

// SeedFromEntropy mixes one rate-sized block of fresh operating-system
// randomness into the state. Reseeding provides backward security: an
// attacker who captured the state before the reseed cannot predict output
// emitted after it.
func (r *RngState) SeedFromEntropy() error {
	return r.SeedFromReader(rand.Reader)
}

// SeedFromReader mixes RateSize bytes read from src into the state. The
// scratch buffer holding the seed material is wiped before returning on
// every path.
func (r *RngState) SeedFromReader(src io.Reader) error {
	var buf [RateSize]byte
	defer wipe(buf[:])
	if _, err := io.ReadFull(src, buf[:]); err != nil {
		return &EntropyError{Err: err}
	}
	r.Seed(buf[:])
	return nil
}

// FillRandomBytes fills p with random bytes. The generator must have been
// seeded with high entropy material for the output to be unpredictable.
func (r *RngState) FillRandomBytes(p []byte) {
	if len(p) > 0 {
		n := r.s.squeezeFirst(p)
		p = p[n:]
		for len(p) > 0 {
			n = r.s.squeezeNext(p)
			p = p[n:]
		}
	}
	r.s.eraseForForwardSecurity()
}

// RandomBytes returns n random bytes. It is FillRandomBytes over a fresh
// slice.
func (r *RngState) RandomBytes(n int) []byte {
	p := make([]byte, n)
	r.FillRandomBytes(p)
	return p
}

// Destroy wipes the entire state buffer, reserved capacity included, so no
// secret bytes outlive the generator in freed or reused memory. The RngState
// must not be used afterwards. Callers should arrange for Destroy to run on
// every exit path, typically via defer.
func (r *RngState) Destroy() {
	r.s.destroy()
}
