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

// Package rombf evaluates the fixed read-once monotone Boolean formula
// circuit Whisper uses to turn 8 bits of branch history into a
// direction prediction.
package rombf

// subunit is the 2-input, 2-selector-bit primitive every node of the
// formula tree is built from:
//
//	b0' = b[0] XOR o[1]
//	sel = o[1] XOR o[0]
//	out = sel ? (b[1] OR b0') : (b[1] AND b0')
//
// which realizes, per the 2-bit selector o: 00->b1&b0, 01->b1|b0,
// 10->b1|!b0, 11->b1&!b0.
func subunit(o, b uint8) bool {
	o0 := o&0x1 != 0
	o1 := o&0x2 != 0
	b0 := b&0x1 != 0
	b1 := b&0x2 != 0

	b0p := b0 != o1 // XOR
	sel := o1 != o0 // XOR
	if sel {
		return b1 || b0p
	}
	return b1 && b0p
}

func pack(hi, lo bool) uint8 {
	v := uint8(0)
	if lo {
		v |= 0x1
	}
	if hi {
		v |= 0x2
	}
	return v
}

func sel2(o uint32, shift uint) uint8 {
	return uint8((o >> shift) & 0x3)
}

func bits2(b uint8, shift uint) uint8 {
	return (b >> shift) & 0x3
}

// Eval evaluates the 7-subunit binary tree over the low 8 bits of
// history, selected by bits 0..13 of formula (bit 14 and above are not
// read). The top-level
// inversion selector the circuit's final stage reads (bit 15 of a
// strict 15-bit selector) is always 0, so the result is always the
// negation of the tree's root subunit — this is the faithfully
// reproduced upstream behavior, not a bug fix.
func Eval(formula uint32, history uint8) bool {
	u0 := subunit(sel2(formula, 0), bits2(history, 0))
	u1 := subunit(sel2(formula, 4), bits2(history, 2))
	u2 := subunit(sel2(formula, 2), pack(u1, u0))
	u3 := subunit(sel2(formula, 8), bits2(history, 4))
	u4 := subunit(sel2(formula, 12), bits2(history, 6))
	u5 := subunit(sel2(formula, 10), pack(u4, u3))
	u6 := subunit(sel2(formula, 6), pack(u5, u2))
	return !u6
}
