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

package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// NewWriter creates a new gzip-compressed trace file at filename. It
// refuses to overwrite an existing file.
func NewWriter(filename string) (Writer, error) {
	if _, err := os.Stat(filename); err == nil {
		return nil, fmt.Errorf("file %s already exists", filename)
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	gzipWriter := gzip.NewWriter(file)
	return &writer{
		buf:    bufio.NewWriter(gzipWriter),
		closer: gzipWriter,
	}, nil
}

// Writer appends records to a trace file.
type Writer interface {
	WriteHint(HintRecord) error
	WriteBranch(BranchRecord) error
	WriteSquash(SquashRecord) error
	Close() error
}

type writeBuffer interface {
	io.Writer
	io.ByteWriter
	Flush() error
}

type writer struct {
	buf    writeBuffer
	closer io.Closer
}

func (w *writer) writeUint64(v uint64) error {
	_, err := w.buf.Write(bigendian.Uint64ToBytes(v))
	return err
}

func (w *writer) writeUint32(v uint32) error {
	_, err := w.buf.Write(bigendian.Uint32ToBytes(v))
	return err
}

func (w *writer) writeBool(v bool) error {
	if v {
		return w.buf.WriteByte(1)
	}
	return w.buf.WriteByte(0)
}

func (w *writer) WriteHint(h HintRecord) error {
	if err := w.buf.WriteByte(byte(OpHint)); err != nil {
		return fmt.Errorf("cannot write hint op marker: %w", err)
	}
	if err := w.writeUint64(h.PC); err != nil {
		return fmt.Errorf("cannot write hint pc: %w", err)
	}
	if err := w.writeUint32(h.Hint); err != nil {
		return fmt.Errorf("cannot write hint word: %w", err)
	}
	return nil
}

func (w *writer) WriteBranch(b BranchRecord) error {
	if err := w.buf.WriteByte(byte(OpBranch)); err != nil {
		return fmt.Errorf("cannot write branch op marker: %w", err)
	}
	if err := w.writeUint32(b.TID); err != nil {
		return fmt.Errorf("cannot write branch tid: %w", err)
	}
	if err := w.writeUint64(b.PC); err != nil {
		return fmt.Errorf("cannot write branch pc: %w", err)
	}
	if err := w.writeBool(b.Uncond); err != nil {
		return fmt.Errorf("cannot write branch uncond flag: %w", err)
	}
	if err := w.writeBool(b.Taken); err != nil {
		return fmt.Errorf("cannot write branch taken flag: %w", err)
	}
	if err := w.writeUint64(b.Target); err != nil {
		return fmt.Errorf("cannot write branch target: %w", err)
	}
	return nil
}

func (w *writer) WriteSquash(s SquashRecord) error {
	if err := w.buf.WriteByte(byte(OpSquash)); err != nil {
		return fmt.Errorf("cannot write squash op marker: %w", err)
	}
	if err := w.writeUint32(s.TID); err != nil {
		return fmt.Errorf("cannot write squash tid: %w", err)
	}
	return nil
}

func (w *writer) Close() error {
	return errors.Join(w.buf.Flush(), w.closer.Close())
}
