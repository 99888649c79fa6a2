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

import "runtime"

const (
	// StateSize is the width of the underlying permutation in bytes.
	StateSize = 200

	// RateSize is the width of the rate area in bytes. Input is absorbed and
	// the first block of every output is emitted at this granularity.
	RateSize = 72

	// erasableSize is the width of the erasable capacity area, the part of
	// the state that is cleared after every absorb and squeeze.
	erasableSize = 64

	// erasableEnd marks the end of the erasable capacity area. The remaining
	// StateSize - erasableEnd bytes form the reserved capacity, which is
	// never emitted and never cleared while the generator is live.
	erasableEnd = RateSize + erasableSize
)

// sponge is the generator's state buffer together with the permutation that
// drives it. The buffer is split into three fixed areas:
//
//	[0, RateSize)            rate: absorb point and first output area
//	[RateSize, erasableEnd)  erasable capacity: second output area, cleared
//	                         after every absorb/squeeze
//	[erasableEnd, StateSize) reserved capacity: never read out
//
// Every state transition below applies the permutation exactly once, as its
// last step, except eraseForForwardSecurity which applies it not at all.
type sponge struct {
	state   [StateSize]byte
	permute func(*[StateSize]byte)
}

// absorbBlock XORs a full rate-sized block into the rate area and permutes.
func (s *sponge) absorbBlock(block []byte) {
	for i, b := range block[:RateSize] {
		s.state[i] ^= b
	}
	s.permute(&s.state)
}

// absorbLastBlock XORs a final partial block (len < RateSize, possibly empty)
// into the rate area, applies the 10*1 padding and permutes. The pad places
// 0x80 in the byte after the data and 0x01 in the last rate byte; for a
// 71-byte block the two land in the same byte and combine to 0x81.
func (s *sponge) absorbLastBlock(block []byte) {
	for i, b := range block {
		s.state[i] ^= b
	}
	s.state[len(block)] ^= 0x80
	s.state[RateSize-1] ^= 0x01
	s.permute(&s.state)
}

// squeezeFirst copies out at most RateSize bytes from the rate area, then
// permutes. It returns the number of bytes copied.
func (s *sponge) squeezeFirst(dst []byte) int {
	n := copy(dst, s.state[:RateSize])
	s.permute(&s.state)
	return n
}

// squeezeNext copies out at most erasableEnd bytes, read from the rate area
// followed by the erasable capacity area, then permutes. It returns the
// number of bytes copied. The reserved capacity is never part of the copy.
func (s *sponge) squeezeNext(dst []byte) int {
	n := copy(dst, s.state[:erasableEnd])
	s.permute(&s.state)
	return n
}

// eraseForForwardSecurity clears the erasable capacity area. Once this has
// run, inverting the permutation from a captured state no longer yields the
// pre-image that produced earlier output, which is what makes emitted bytes
// unrecoverable after the fact.
func (s *sponge) eraseForForwardSecurity() {
	wipe(s.state[RateSize:erasableEnd])
}

// destroy clears the whole state buffer, reserved capacity included.
func (s *sponge) destroy() {
	wipe(s.state[:])
}

// wipe overwrites p with zero bytes. The KeepAlive pins p past the stores so
// the compiler cannot treat them as dead writes to memory about to be freed.
//
//go:noinline
func wipe(p []byte) {
	for i := range p {
		p[i] = 0
	}
	runtime.KeepAlive(p)
}
