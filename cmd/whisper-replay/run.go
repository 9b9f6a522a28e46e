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
	"io"
	"os"
	"sort"

	"github.com/0xsoniclabs/whisper/logger"
	"github.com/0xsoniclabs/whisper/predictor"
	"github.com/0xsoniclabs/whisper/trace"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
)

func run(c *cli.Context) error {
	traceFile := c.String("trace-file")
	report := c.String("report")
	logLevel := c.String(logger.LogLevelFlag.Name)

	cfg := predictor.Config{
		HintBufferSize: c.Uint("hint-buffer-size"),
		FallbackName:   c.String("fallback"),
	}

	log := logger.NewLogger(logLevel, "whisper-replay")

	r, err := trace.NewReader(traceFile)
	if err != nil {
		return err
	}
	defer r.Close()

	fb, err := resolveFallback(cfg.FallbackName)
	if err != nil {
		return err
	}
	p := predictor.New(cfg, fb, log)

	stats := newStatsCollector()
	lastBPHistory := map[uint32]predictor.History{}

	for {
		op, err := r.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("cannot read next record: %w", err)
		}

		switch op {
		case trace.OpHint:
			rec, err := r.ReadHint()
			if err != nil {
				return fmt.Errorf("cannot read hint record: %w", err)
			}
			p.Insert(rec.PC, rec.Hint)

		case trace.OpBranch:
			rec, err := r.ReadBranch()
			if err != nil {
				return fmt.Errorf("cannot read branch record: %w", err)
			}
			tid := int(rec.TID)
			predicted, bpHistory := p.Lookup(tid, rec.PC, lastBPHistory[rec.TID])
			lastBPHistory[rec.TID] = bpHistory
			stats.record(tid, bpHistory == nil, predicted == rec.Taken)
			p.UpdateHistories(tid, rec.PC, rec.Uncond, rec.Taken, rec.Target, bpHistory)

		case trace.OpSquash:
			rec, err := r.ReadSquash()
			if err != nil {
				return fmt.Errorf("cannot read squash record: %w", err)
			}
			p.Squash(int(rec.TID), lastBPHistory[rec.TID])

		default:
			return fmt.Errorf("unknown trace record kind %d", op)
		}
	}

	if report == "table" {
		printReport(os.Stdout, stats)
	}
	return nil
}

func printReport(w io.Writer, s *statsCollector) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"thread", "branches", "whisper hits", "mispredicts", "accuracy"})

	tids := make([]int, 0, len(s.byThread))
	for tid := range s.byThread {
		tids = append(tids, tid)
	}
	sort.Ints(tids)

	for _, tid := range tids {
		st := s.byThread[tid]
		accuracy := 1.0
		if st.branches > 0 {
			accuracy = float64(st.branches-st.mispredicts) / float64(st.branches)
		}
		t.AppendRow(table.Row{tid, st.branches, st.whisperHits, st.mispredicts, fmt.Sprintf("%.2f%%", accuracy*100)})
	}
	t.Render()
}
