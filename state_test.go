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
	"bytes"
	"fmt"
	"testing"
)

// countPermutations redirects the generator's permutation through a counter,
// so tests can pin down exactly how many blocks an operation processes.
func countPermutations(r *RngState) *int {
	calls := new(int)
	inner := r.s.permute
	r.s.permute = func(st *[StateSize]byte) {
		*calls++
		inner(st)
	}
	return calls
}

func TestAbsorbBlockCounts(t *testing.T) {
	// One padded block minimum, and a full final data block forces an extra
	// padding-only block. Input is never silently dropped or merged away.
	tests := []struct {
		inputLen int
		blocks   int
	}{
		{0, 1},
		{1, 1},
		{71, 1},
		{72, 2},
		{73, 2},
		{143, 2},
		{144, 3},
		{145, 3},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d byte input", test.inputLen), func(t *testing.T) {
			rng := New(nil)
			calls := countPermutations(rng)
			rng.Seed(make([]byte, test.inputLen))
			if *calls != test.blocks {
				t.Errorf("absorbed %d blocks, want %d", *calls, test.blocks)
			}
		})
	}
}

func TestSqueezePermutationCounts(t *testing.T) {
	// First block comes from the rate area alone (72 bytes), every further
	// block from rate plus erasable capacity (136 bytes). Requests within the
	// first block must never run an intermediate output.
	tests := []struct {
		n     int
		calls int
	}{
		{1, 1},
		{71, 1},
		{72, 1},
		{73, 2},
		{136, 2},
		{208, 2},
		{209, 3},
		{344, 3},
		{345, 4},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("%d bytes", test.n), func(t *testing.T) {
			rng := New([]byte(goldenSeed))
			calls := countPermutations(rng)
			rng.FillRandomBytes(make([]byte, test.n))
			if *calls != test.calls {
				t.Errorf("squeeze ran %d permutations, want %d", *calls, test.calls)
			}
		})
	}
}

func TestSqueezeMatchesBasicActions(t *testing.T) {
	// A 208-byte request is exactly one initial output plus one intermediate
	// output, nothing reordered, nothing skipped.
	rng := New([]byte(goldenSeed))
	var manual [208]byte
	rng.s.squeezeFirst(manual[:RateSize])
	rng.s.squeezeNext(manual[RateSize:])
	rng.s.eraseForForwardSecurity()

	want := New([]byte(goldenSeed)).RandomBytes(208)
	if !bytes.Equal(want, manual[:]) {
		t.Errorf("composite squeeze diverges from basic actions\nhave %x\nwant %x", manual, want)
	}
}

// identitySponge returns a sponge whose permutation is a no-op, so the pure
// XOR/copy/erase behaviour of the basic actions is observable directly.
func identitySponge() *sponge {
	return &sponge{permute: func(*[StateSize]byte) {}}
}

func TestAbsorbBlockXORsRateOnly(t *testing.T) {
	s := identitySponge()
	for i := range s.state {
		s.state[i] = 0xff
	}
	block := bytes.Repeat([]byte{0x0f}, RateSize)
	s.absorbBlock(block)

	for i := 0; i < RateSize; i++ {
		if s.state[i] != 0xf0 {
			t.Fatalf("rate byte %d = %#x, want 0xf0", i, s.state[i])
		}
	}
	for i := RateSize; i < StateSize; i++ {
		if s.state[i] != 0xff {
			t.Fatalf("byte %d outside the rate area was modified", i)
		}
	}
}

func TestAbsorbLastBlockPadding(t *testing.T) {
	tests := []struct {
		name     string
		inputLen int
		check    func(t *testing.T, s *sponge)
	}{
		{"empty", 0, func(t *testing.T, s *sponge) {
			if s.state[0] != 0x80 {
				t.Errorf("pad start byte = %#x, want 0x80", s.state[0])
			}
			if s.state[RateSize-1] != 0x01 {
				t.Errorf("pad end byte = %#x, want 0x01", s.state[RateSize-1])
			}
		}},
		{"mid", 10, func(t *testing.T, s *sponge) {
			if s.state[10] != 0x80 {
				t.Errorf("pad start byte = %#x, want 0x80", s.state[10])
			}
			if s.state[RateSize-1] != 0x01 {
				t.Errorf("pad end byte = %#x, want 0x01", s.state[RateSize-1])
			}
		}},
		{"one short of full", 71, func(t *testing.T, s *sponge) {
			// Pad start and pad end share the final byte.
			if s.state[RateSize-1] != 0x81 {
				t.Errorf("combined pad byte = %#x, want 0x81", s.state[RateSize-1])
			}
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := identitySponge()
			s.absorbLastBlock(make([]byte, test.inputLen))
			test.check(t, s)
			for i := RateSize; i < StateSize; i++ {
				if s.state[i] != 0 {
					t.Fatalf("padding touched byte %d outside the rate area", i)
				}
			}
		})
	}
}

func TestEraseForForwardSecurity(t *testing.T) {
	s := identitySponge()
	for i := range s.state {
		s.state[i] = 0xff
	}
	s.eraseForForwardSecurity()

	for i := 0; i < StateSize; i++ {
		inErasable := i >= RateSize && i < erasableEnd
		if inErasable && s.state[i] != 0 {
			t.Fatalf("erasable byte %d not cleared", i)
		}
		if !inErasable && s.state[i] != 0xff {
			t.Fatalf("byte %d outside the erasable area was cleared", i)
		}
	}
}

func TestSqueezeNextExcludesReservedCapacity(t *testing.T) {
	s := identitySponge()
	for i := range s.state {
		s.state[i] = byte(i)
	}
	var dst [StateSize]byte
	n := s.squeezeNext(dst[:])
	if n != erasableEnd {
		t.Fatalf("squeezeNext emitted %d bytes, want %d", n, erasableEnd)
	}
	if !bytes.Equal(dst[:n], s.state[:erasableEnd]) {
		t.Error("intermediate output does not match rate plus erasable capacity")
	}
}

func TestWipe(t *testing.T) {
	p := bytes.Repeat([]byte{0xaa}, 123)
	wipe(p)
	if !bytes.Equal(p, make([]byte, 123)) {
		t.Error("wipe left residue")
	}
	wipe(nil) // must not panic
}
