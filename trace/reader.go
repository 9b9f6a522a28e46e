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

// NewReader opens a gzip-compressed hint/branch trace file for
// streaming, record-by-record replay.
func NewReader(filename string) (Reader, error) {
	stat, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("could not stat trace file: %s, does it exist? %w", filename, err)
	}
	if stat.IsDir() {
		return nil, errors.New("given path to trace file is a directory")
	}
	if stat.Size() == 0 {
		return nil, errors.New("given trace file is empty")
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open trace file: %s, %w", filename, err)
	}
	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create gzip reader for trace file: %s, %w", filename, err)
	}
	return &reader{
		buf:    bufio.NewReader(gzipReader),
		closer: gzipReader,
	}, nil
}

//go:generate mockgen -source reader.go -destination reader_mock.go -package trace

// Reader streams decoded records from a trace file.
type Reader interface {
	// Next reads the next record's kind. It returns io.EOF when the
	// trace is exhausted.
	Next() (Op, error)
	ReadHint() (HintRecord, error)
	ReadBranch() (BranchRecord, error)
	ReadSquash() (SquashRecord, error)
	Close() error
}

type readBuffer interface {
	io.Reader
	io.ByteReader
}

type reader struct {
	buf    readBuffer
	closer io.Closer
}

func (r *reader) Next() (Op, error) {
	b, err := r.buf.ReadByte()
	if err != nil {
		return 0, err
	}
	return Op(b), nil
}

func (r *reader) readUint64() (uint64, error) {
	data, err := r.readData(8)
	if err != nil {
		return 0, err
	}
	return bigendian.BytesToUint64(data), nil
}

func (r *reader) readUint32() (uint32, error) {
	data, err := r.readData(4)
	if err != nil {
		return 0, err
	}
	return bigendian.BytesToUint32(data), nil
}

func (r *reader) readBool() (bool, error) {
	b, err := r.buf.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *reader) readData(size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(r.buf, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *reader) ReadHint() (HintRecord, error) {
	pc, err := r.readUint64()
	if err != nil {
		return HintRecord{}, fmt.Errorf("cannot read hint pc: %w", err)
	}
	w, err := r.readUint32()
	if err != nil {
		return HintRecord{}, fmt.Errorf("cannot read hint word: %w", err)
	}
	return HintRecord{PC: pc, Hint: w}, nil
}

func (r *reader) ReadBranch() (BranchRecord, error) {
	tid, err := r.readUint32()
	if err != nil {
		return BranchRecord{}, fmt.Errorf("cannot read branch tid: %w", err)
	}
	pc, err := r.readUint64()
	if err != nil {
		return BranchRecord{}, fmt.Errorf("cannot read branch pc: %w", err)
	}
	uncond, err := r.readBool()
	if err != nil {
		return BranchRecord{}, fmt.Errorf("cannot read branch uncond flag: %w", err)
	}
	taken, err := r.readBool()
	if err != nil {
		return BranchRecord{}, fmt.Errorf("cannot read branch taken flag: %w", err)
	}
	target, err := r.readUint64()
	if err != nil {
		return BranchRecord{}, fmt.Errorf("cannot read branch target: %w", err)
	}
	return BranchRecord{TID: tid, PC: pc, Uncond: uncond, Taken: taken, Target: target}, nil
}

func (r *reader) ReadSquash() (SquashRecord, error) {
	tid, err := r.readUint32()
	if err != nil {
		return SquashRecord{}, fmt.Errorf("cannot read squash tid: %w", err)
	}
	return SquashRecord{TID: tid}, nil
}

func (r *reader) Close() error {
	return r.closer.Close()
}
