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
	"flag"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/0xsoniclabs/whisper/hint"
	"github.com/0xsoniclabs/whisper/logger"
	"github.com/0xsoniclabs/whisper/trace"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newRunContext(t *testing.T, traceFile string, hintBufferSize uint, report string) *cli.Context {
	t.Helper()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, fl := range []cli.Flag{
		&cli.StringFlag{Name: "trace-file"},
		&cli.UintFlag{Name: "hint-buffer-size"},
		&cli.StringFlag{Name: "fallback", Value: "static"},
		&cli.StringFlag{Name: "report"},
		&logger.LogLevelFlag,
	} {
		require.NoError(t, fl.Apply(fs))
	}

	require.NoError(t, fs.Set("trace-file", traceFile))
	require.NoError(t, fs.Set("hint-buffer-size", strconv.FormatUint(uint64(hintBufferSize), 10)))
	require.NoError(t, fs.Set("report", report))

	return cli.NewContext(cli.NewApp(), fs, nil)
}

func writeSampleTrace(t *testing.T, path string) {
	t.Helper()

	w, err := trace.NewWriter(path)
	require.NoError(t, err)

	require.NoError(t, w.WriteHint(trace.HintRecord{PC: 0x1000, Hint: hint.Encode(0, 0, hint.BiasTaken, 0)}))
	require.NoError(t, w.WriteBranch(trace.BranchRecord{TID: 0, PC: 0x1000, Uncond: false, Taken: true, Target: 0x1010}))
	require.NoError(t, w.WriteBranch(trace.BranchRecord{TID: 0, PC: 0x2000, Uncond: false, Taken: false, Target: 0x2010}))
	require.NoError(t, w.WriteSquash(trace.SquashRecord{TID: 0}))
	require.NoError(t, w.Close())
}

func TestRun_ReplaysTraceAndReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.bin.gz")
	writeSampleTrace(t, path)

	ctx := newRunContext(t, path, 8, "table")
	require.NoError(t, run(ctx))
}

func TestRun_MissingTraceFile(t *testing.T) {
	ctx := newRunContext(t, filepath.Join(t.TempDir(), "missing.gz"), 8, "none")
	err := run(ctx)
	require.Error(t, err)
}

func TestRun_UnknownFallbackRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.bin.gz")
	writeSampleTrace(t, path)

	ctx := newRunContext(t, path, 8, "none")
	require.NoError(t, ctx.Set("fallback", "nonexistent"))
	require.Error(t, run(ctx))
}
