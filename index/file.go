// Copyright 2025 Hirewise Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package index

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// File format: a fixed little-endian header followed by the raw row-major
// float32 payload.
//
//	[4] magic "FVIX"
//	[4] uint32 format version
//	[4] uint32 dimension
//	[4] uint32 vector count
//	[dim*count*4] float32 data
const (
	fileMagic   = "FVIX"
	fileVersion = uint32(1)
)

// WriteFile persists the index to path, replacing any existing file.
func WriteFile(f *Flat, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create index file: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if _, err := w.WriteString(fileMagic); err != nil {
		return fmt.Errorf("failed to write index header: %w", err)
	}
	header := []uint32{fileVersion, uint32(f.dim), uint32(f.Len())}
	for _, v := range header {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return fmt.Errorf("failed to write index header: %w", err)
		}
	}

	buf := make([]byte, 4)
	for _, v := range f.data {
		binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("failed to write index data: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush index file: %w", err)
	}
	return out.Sync()
}

// ReadFile loads an index previously written with WriteFile.
func ReadFile(path string) (*Flat, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index file: %w", err)
	}
	defer in.Close()

	r := bufio.NewReader(in)

	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("%w: missing header", ErrCorruptIndex)
	}
	if string(magic) != fileMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorruptIndex, magic)
	}

	var version, dim, count uint32
	for _, dst := range []*uint32{&version, &dim, &count} {
		if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
			return nil, fmt.Errorf("%w: truncated header", ErrCorruptIndex)
		}
	}
	if version != fileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptIndex, version)
	}
	if dim == 0 {
		return nil, fmt.Errorf("%w: zero dimension", ErrCorruptIndex)
	}

	data := make([]float32, int(dim)*int(count))
	buf := make([]byte, 4)
	for i := range data {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("%w: truncated data", ErrCorruptIndex)
		}
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf))
	}

	// Trailing bytes mean the header lied about the count.
	if _, err := r.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrCorruptIndex)
	}

	return &Flat{dim: int(dim), data: data}, nil
}
