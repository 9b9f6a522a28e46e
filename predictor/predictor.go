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

// Package predictor implements the Whisper predictor façade: the
// simulator-facing contract that composes the hint buffer, the ROMBF
// evaluator and the per-thread global history register, and decides
// per branch whether Whisper itself can answer or whether the call
// must be delegated to an external fallback predictor.
//
//go:generate mockgen -source predictor.go -destination fallback_mock.go -package predictor
package predictor

import (
	"github.com/0xsoniclabs/whisper/hint"
	"github.com/0xsoniclabs/whisper/hintbuf"
	"github.com/0xsoniclabs/whisper/history"
	"github.com/0xsoniclabs/whisper/logger"
	"github.com/0xsoniclabs/whisper/rombf"
)

// History is the simulator's opaque, pointer-sized bp_history token.
// Whisper never allocates, interprets or frees it: nil means Whisper
// answered the lookup itself, any non-nil value came from the
// fallback and is passed back to it unchanged.
type History any

// Fallback is the capability set the simulator's conventional
// predictor must satisfy. It is declared here, not imported from a
// simulator package, because the simulator's branch-predictor base
// interface is an external collaborator per Whisper's design: it is
// referenced, never owned or re-implemented for others.
type Fallback interface {
	Lookup(tid int, pc uint64, h History) (bool, History)
	Update(tid int, pc uint64, taken bool, h History, squashed bool, target uint64)
	UpdateHistories(tid int, pc uint64, uncond, taken bool, target uint64, h History)
	Squash(tid int, h History)
}

// Config holds the knobs the replay CLI (and, eventually, the
// simulator's own wiring code) exposes for constructing a Predictor.
// FallbackName does not affect the Predictor itself — it only records
// which Fallback implementation the caller resolved and constructed
// before calling New, so it can be logged and round-tripped alongside
// HintBufferSize.
type Config struct {
	HintBufferSize uint
	FallbackName   string
}

// Predictor is the Whisper façade. It exclusively owns the hint buffer
// and the per-thread global-history map; the fallback is referenced,
// not owned.
type Predictor struct {
	buf      *hintbuf.Buffer
	hist     *history.Registers
	fallback Fallback
	log      logger.Logger
}

// New creates a Predictor sized per cfg.HintBufferSize, delegating to
// fallback whenever Whisper declines to answer.
func New(cfg Config, fallback Fallback, log logger.Logger) *Predictor {
	return &Predictor{
		buf:      hintbuf.New(cfg.HintBufferSize),
		hist:     history.New(),
		fallback: fallback,
		log:      log,
	}
}

// Insert stores a software hint injected out-of-band by the
// simulator's hint-carrying instruction.
func (p *Predictor) Insert(pc uint64, w uint32) {
	p.buf.Insert(pc, w)
}

// predictWithHint evaluates a decoded hint against the thread's
// current history. ok is false when the hint applies but Whisper must
// still decline (history length > 8, unimplemented).
func (p *Predictor) predictWithHint(tid int, h hint.Hint) (taken, ok bool) {
	switch h.Bias {
	case hint.BiasNotTaken:
		return false, true
	case hint.BiasTaken:
		return true, true
	}
	if hint.HistLength(h.History) != 8 {
		return false, false
	}
	return rombf.Eval(h.BoolFormula, p.hist.Low8(tid)), true
}

// Lookup implements the simulator's predictor contract. If a hint
// covers pc and Whisper can decide (bias, or a history-length-8
// formula), Whisper answers directly and bp_history is left nil. Any
// other case delegates to the fallback.
func (p *Predictor) Lookup(tid int, pc uint64, bpHistory History) (bool, History) {
	if e, found := p.buf.Lookup(pc); found {
		h := hint.Decode(e.Hint)
		if taken, ok := p.predictWithHint(tid, h); ok {
			return taken, nil
		}
		p.log.Debugf("tid=%d pc=%#x: hint present but history length %d unimplemented, deferring to fallback",
			tid, pc, hint.HistLength(h.History))
	}
	return p.fallback.Lookup(tid, pc, bpHistory)
}

// UpdateHistories updates the thread's global history register for
// conditional branches, then forwards to the fallback unless pc is
// covered by a stored hint (in which case Whisper handled the
// prediction and the fallback must not also maintain state for it).
func (p *Predictor) UpdateHistories(tid int, pc uint64, uncond, taken bool, target uint64, bpHistory History) {
	if !uncond {
		p.hist.Update(tid, taken)
	}
	if _, found := p.buf.Lookup(pc); !found {
		p.fallback.UpdateHistories(tid, pc, uncond, taken, target, bpHistory)
	}
}

// Update is the simulator's retirement-time diagnostic callback. On a
// non-squash-driven update covered by a hint, Whisper re-evaluates the
// hint and compares it against the observed outcome purely for
// logging; the comparison never influences control flow. As with
// UpdateHistories, the call is only forwarded to the fallback when no
// hint covers pc.
func (p *Predictor) Update(tid int, pc uint64, taken bool, bpHistory History, squashed bool, target uint64) {
	if !squashed {
		if e, found := p.buf.Lookup(pc); found {
			h := hint.Decode(e.Hint)
			if predicted, ok := p.predictWithHint(tid, h); ok && predicted != taken {
				p.log.Debugf("tid=%d pc=%#x: hint mispredicted, predicted=%v actual=%v", tid, pc, predicted, taken)
			}
		}
	}
	if _, found := p.buf.Lookup(pc); !found {
		p.fallback.Update(tid, pc, taken, bpHistory, squashed, target)
	}
}

// Squash notifies the predictor that a speculatively predicted branch
// was rolled back. Whisper keeps no speculative state of its own
// beyond the shared global-history register, which is intentionally
// left un-rewound; the call only forwards to the fallback, and only
// when bpHistory is non-nil (meaning the token originated there).
func (p *Predictor) Squash(tid int, bpHistory History) {
	if bpHistory != nil {
		p.fallback.Squash(tid, bpHistory)
	}
}
