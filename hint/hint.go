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

// Package hint decodes the 32-bit software hint word a cooperating
// program emits to steer Whisper's branch predictions.
package hint

// Bias values a hint can carry in its 2-bit bias field.
const (
	BiasNotTaken  = 0b00
	BiasTaken     = 0b11
	BiasFormulaLo = 0b01
	BiasFormulaHi = 0b10
)

// histLengths is the fixed geometric table mapping a 4-bit history
// selector to a history length, ratio ~1.3819, base 8.
var histLengths = [16]int{
	8, 11, 15, 21, 29, 40, 56, 77,
	106, 147, 203, 281, 388, 536, 741, 1024,
}

// Hint is the decoded form of a 32-bit hint word.
//
// BoolFormula is kept in a 32-bit container even though the wire field
// is only 15 bits wide. Decoding never sets bits above 14, so bit 15 of
// this selector, the circuit's top-level inversion flag, always reads
// as 0; rombf.Eval relies on that and negates its result unconditionally.
type Hint struct {
	History     uint8
	BoolFormula uint32
	Bias        uint8
	PCOffset    uint16
}

// Decode unpacks a 32-bit hint word into its four fields. Decoding is
// total: every uint32 produces some Hint, there is no failure mode.
func Decode(w uint32) Hint {
	return Hint{
		History:     uint8((w >> 28) & 0xF),
		BoolFormula: (w >> 14) & 0x7FFF,
		Bias:        uint8((w >> 12) & 0x3),
		PCOffset:    uint16(w & 0xFFF),
	}
}

// Encode packs the four fields into a 32-bit hint word, masking each
// to its declared width. It exists mainly to build fixtures for tests.
// Bit 14 of formula and bit 0 of history both land on word bit 28 and
// are ORed there, so Decode returns the original fields only when those
// two bits agree.
func Encode(history, formula, bias, pcOffset uint32) uint32 {
	return (history << 28) | ((formula & 0x7FFF) << 14) | ((bias & 0x3) << 12) | (pcOffset & 0xFFF)
}

// HistLength returns the history length selected by a 4-bit selector,
// per the fixed geometric table. selector must be in [0,15]; any other
// value is a programming error (the field is 4 bits wide in every
// valid hint) and panics rather than silently returning a wrong length.
func HistLength(selector uint8) int {
	if selector > 15 {
		panic("hint: history selector out of range")
	}
	return histLengths[selector]
}
