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

// Package trace reads and writes the gzip-compressed, big-endian
// binary stream a recorded run feeds to the replay command outside
// the simulator.
package trace

// Op identifies the kind of record the next entry in a trace holds.
type Op uint8

const (
	OpHint Op = iota
	OpBranch
	OpSquash
)

// HintRecord is an out-of-band insert(pc, hint) call.
type HintRecord struct {
	PC   uint64
	Hint uint32
}

// BranchRecord is a paired lookup/updateHistories call for one
// simulated conditional or unconditional branch.
type BranchRecord struct {
	TID    uint32
	PC     uint64
	Uncond bool
	Taken  bool
	Target uint64
}

// SquashRecord is a squash notification for a simulated thread.
type SquashRecord struct {
	TID uint32
}
