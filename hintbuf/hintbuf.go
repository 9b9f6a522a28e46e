// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

// Package hintbuf implements Whisper's bounded, LRU-ordered hint
// buffer. Capacity is expected to stay in the tens of entries, so a
// linear-scan slice outperforms a hash-indexed cache for this
// workload and keeps front-to-back scan order, which the LRU and
// first-match semantics both depend on.
package hintbuf

import "github.com/0xsoniclabs/whisper/hint"

// AddrBits is the width of the address space pc_offset arithmetic
// wraps around, matching a 32-bit simulated program counter.
const AddrBits = 32

const addrMask = (uint64(1) << AddrBits) - 1

// Entry is one (branch-PC, hint-word) pair held in the buffer. Two
// entries are equivalent when their Addr matches; Hint is ignored for
// equality.
type Entry struct {
	Addr uint64
	Hint uint32
}

// Buffer is a fixed-capacity, LRU-ordered sequence of Entry. The front
// (index 0) is the least-recently-used slot and is the eviction
// candidate; the back is the most-recently-used slot.
type Buffer struct {
	capacity uint
	entries  []Entry
}

// New creates an empty hint buffer with the given capacity. A capacity
// of 0 is legal: every Insert is immediately evicted.
func New(capacity uint) *Buffer {
	return &Buffer{capacity: capacity}
}

// Capacity returns the buffer's fixed capacity.
func (b *Buffer) Capacity() uint {
	return b.capacity
}

// Len returns the number of entries currently held.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Insert decodes hint, resolves the branch PC by adding the hint's
// unsigned pc_offset to pc (wrapping modulo 2^AddrBits), and appends
// the resulting entry at the back, evicting from the front as many
// times as needed to respect capacity. Duplicates are permitted.
func (b *Buffer) Insert(pc uint64, w uint32) {
	h := hint.Decode(w)
	branchPC := (pc + uint64(h.PCOffset)) & addrMask
	b.entries = append(b.entries, Entry{Addr: branchPC, Hint: w})
	for uint(len(b.entries)) > b.capacity {
		b.entries = b.entries[1:]
	}
}

// Lookup returns the first front-to-back entry whose Addr matches pc,
// relocating it to the back (MarkUsed) on a hit.
func (b *Buffer) Lookup(pc uint64) (Entry, bool) {
	for i, e := range b.entries {
		if e.Addr == pc {
			b.markUsedAt(i)
			return e, true
		}
	}
	return Entry{}, false
}

func (b *Buffer) markUsedAt(i int) {
	e := b.entries[i]
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	b.entries = append(b.entries, e)
}

// Entries returns the buffer's contents, front (LRU) to back (MRU),
// for diagnostics and tests. The returned slice must not be mutated.
func (b *Buffer) Entries() []Entry {
	return b.entries
}
