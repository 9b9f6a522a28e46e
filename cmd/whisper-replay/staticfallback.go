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

package main

import (
	"fmt"

	"github.com/0xsoniclabs/whisper/predictor"
)

// resolveFallback constructs the predictor.Fallback named by the
// replay command's --fallback flag. "static" is the only name built
// in today; it is a switch, not a registry, because there is exactly
// one reference fallback to select.
func resolveFallback(name string) (predictor.Fallback, error) {
	switch name {
	case "static":
		return newStaticFallback(), nil
	default:
		return nil, fmt.Errorf("unknown fallback %q", name)
	}
}

// staticFallback is a deterministic "always not-taken" predictor. It
// exists only so whisper-replay is runnable without wiring a real
// simulator-side predictor: it exercises the predictor.Fallback
// boundary end-to-end, it is not meant to compete on accuracy.
type staticFallback struct{}

func newStaticFallback() *staticFallback {
	return &staticFallback{}
}

// token is the sentinel staticFallback hands back as bp_history. It
// must be non-nil: predictor.History == nil is reserved for "Whisper
// answered the lookup itself".
type token struct{}

func (f *staticFallback) Lookup(_ int, _ uint64, _ predictor.History) (bool, predictor.History) {
	return false, token{}
}

func (f *staticFallback) Update(_ int, _ uint64, _ bool, _ predictor.History, _ bool, _ uint64) {}

func (f *staticFallback) UpdateHistories(_ int, _ uint64, _, _ bool, _ uint64, _ predictor.History) {
}

func (f *staticFallback) Squash(_ int, _ predictor.History) {}
