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

type threadStats struct {
	branches    int
	whisperHits int
	mispredicts int
}

type statsCollector struct {
	byThread map[int]*threadStats
}

func newStatsCollector() *statsCollector {
	return &statsCollector{byThread: map[int]*threadStats{}}
}

func (s *statsCollector) record(tid int, whisperAnswered, correct bool) {
	st, ok := s.byThread[tid]
	if !ok {
		st = &threadStats{}
		s.byThread[tid] = st
	}
	st.branches++
	if whisperAnswered {
		st.whisperHits++
	}
	if !correct {
		st.mispredicts++
	}
}
