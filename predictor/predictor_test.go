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

package predictor

import (
	"testing"

	"github.com/0xsoniclabs/whisper/hint"
	"github.com/0xsoniclabs/whisper/logger"
	"github.com/0xsoniclabs/whisper/rombf"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testLogger() logger.Logger {
	return logger.NewLogger("CRITICAL", "predictor-test")
}

func TestLookup_BiasTakenHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := NewMockFallback(ctrl)
	p := New(Config{HintBufferSize: 4}, fb, testLogger())
	p.Insert(0x1000, hint.Encode(0, 0, hint.BiasTaken, 0))

	taken, bp := p.Lookup(0, 0x1000, nil)
	assert.True(t, taken)
	assert.Nil(t, bp)
}

func TestLookup_BiasNotTakenHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := NewMockFallback(ctrl)
	p := New(Config{HintBufferSize: 4}, fb, testLogger())
	p.Insert(0x1000, hint.Encode(0, 0, hint.BiasNotTaken, 0))

	taken, bp := p.Lookup(0, 0x1000, nil)
	assert.False(t, taken)
	assert.Nil(t, bp)
}

func TestLookup_MissDelegatesToFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := NewMockFallback(ctrl)
	fb.EXPECT().Lookup(0, uint64(0x2000), History(nil)).Return(true, History("fallback-token")).Times(1)

	p := New(Config{HintBufferSize: 4}, fb, testLogger())
	taken, bp := p.Lookup(0, 0x2000, nil)
	assert.True(t, taken)
	assert.Equal(t, History("fallback-token"), bp)
}

func TestLookup_HistLenAbove8Declines(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := NewMockFallback(ctrl)
	fb.EXPECT().Lookup(0, uint64(0x3000), History(nil)).Return(false, nil).Times(1)

	p := New(Config{HintBufferSize: 4}, fb, testLogger())
	// history selector 1 -> length 11, unimplemented.
	p.Insert(0x3000, hint.Encode(1, 0x1234, hint.BiasFormulaLo, 0))
	_, _ = p.Lookup(0, 0x3000, nil)
}

func TestLookup_FormulaPredictionHistLength8(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := NewMockFallback(ctrl)
	p := New(Config{HintBufferSize: 4}, fb, testLogger())

	formula := uint32(0x2A5A)
	p.Insert(0x4000, hint.Encode(0, formula, hint.BiasFormulaLo, 0))

	outcomes := []bool{false, true, false, true, false, true, false, true}
	for _, taken := range outcomes {
		p.UpdateHistories(0, 0x4000, false, taken, 0, nil)
	}

	want := rombf.Eval(formula, 0b01010101)
	taken, bp := p.Lookup(0, 0x4000, nil)
	assert.Equal(t, want, taken)
	assert.Nil(t, bp)
}

func TestUpdateHistories_ForwardsOnlyOnMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := NewMockFallback(ctrl)
	fb.EXPECT().UpdateHistories(0, uint64(0x9000), false, true, uint64(0x9010), History(nil)).Times(1)

	p := New(Config{HintBufferSize: 4}, fb, testLogger())
	p.Insert(0x1000, hint.Encode(0, 0, hint.BiasTaken, 0))

	// Miss: forwarded.
	p.UpdateHistories(0, 0x9000, false, true, 0x9010, nil)
	// Hit: not forwarded (no further EXPECT configured, would fail otherwise).
	p.UpdateHistories(0, 0x1000, false, true, 0x1010, nil)
}

func TestUpdateHistories_UnconditionalDoesNotTouchHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := NewMockFallback(ctrl)
	fb.EXPECT().UpdateHistories(gomock.Any(), gomock.Any(), true, gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	p := New(Config{HintBufferSize: 4}, fb, testLogger())
	p.UpdateHistories(0, 0x9000, true, true, 0, nil)
	assert.Equal(t, uint8(0), p.hist.Low8(0))
}

func TestSquash_ForwardsOnlyWhenHistoryNonNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := NewMockFallback(ctrl)
	fb.EXPECT().Squash(0, History("tok")).Times(1)

	p := New(Config{HintBufferSize: 4}, fb, testLogger())
	p.Squash(0, nil) // no-op, no EXPECT for nil.
	p.Squash(0, History("tok"))
}

func TestUpdate_DiagnosticNeverChangesOutcomeAndForwardsOnMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	fb := NewMockFallback(ctrl)
	fb.EXPECT().Update(0, uint64(0x5000), false, History(nil), false, uint64(0)).Times(1)

	p := New(Config{HintBufferSize: 4}, fb, testLogger())
	p.Insert(0x1000, hint.Encode(0, 0, hint.BiasTaken, 0))

	// Covered by a hint: not forwarded, regardless of agreement with the hint.
	p.Update(0, 0x1000, false, nil, false, 0)
	// Squashed: still only forwarded on miss, and squash suppresses the diagnostic compare.
	p.Update(0, 0x1000, false, nil, true, 0)
	// Miss: forwarded.
	p.Update(0, 0x5000, false, nil, false, 0)
}
