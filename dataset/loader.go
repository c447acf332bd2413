// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package dataset

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
)

// DefaultMaxSize bounds the uncompressed input read by Load.
const DefaultMaxSize = 16 * datasize.MB

// LoadOptions configures Load.
type LoadOptions struct {
	MaxSize datasize.ByteSize // zero disables the limit
}

// Dataset is a loaded input file.
type Dataset struct {
	Source   string            // path of the input file
	Records  *Records          // parsed records in file order
	Size     datasize.ByteSize // uncompressed size of the input
	Checksum uint8             // CRC-8 of the uncompressed input
}

// String summarises the provenance of the dataset.
func (d *Dataset) String() string {
	return fmt.Sprintf("%s (%d records, %s, crc8 0x%02x)",
		d.Source, d.Records.Len(), d.Size.HumanReadable(), d.Checksum)
}

// Load reads and parses an input file. Files ending in .gz or .bz2 are
// decompressed on the fly.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	data, err := readLimited(in, opts.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s; %w", path, err)
	}

	records, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s; %w", path, err)
	}

	return &Dataset{
		Source:   path,
		Records:  records,
		Size:     datasize.ByteSize(len(data)),
		Checksum: Checksum(data),
	}, nil
}

// compressedFile closes both the decompressor and the underlying file.
type compressedFile struct {
	io.ReadCloser
	file *os.File
}

func (c *compressedFile) Close() error {
	err := c.ReadCloser.Close()
	if ferr := c.file.Close(); err == nil {
		err = ferr
	}
	return err
}

// openInput opens a file and picks the decompressor by extension.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input file; %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("cannot open gzip stream; %w", err)
		}
		return &compressedFile{ReadCloser: zr, file: f}, nil
	case ".bz2":
		zr, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("cannot open bzip stream; %w", err)
		}
		return &compressedFile{ReadCloser: zr, file: f}, nil
	default:
		return f, nil
	}
}

// readLimited reads the whole input, failing if it exceeds max bytes.
func readLimited(in io.Reader, max datasize.ByteSize) ([]byte, error) {
	if max == 0 {
		return io.ReadAll(in)
	}
	data, err := io.ReadAll(io.LimitReader(in, int64(max.Bytes())+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) > max.Bytes() {
		return nil, fmt.Errorf("%w; limit is %s", ErrInputTooLarge, max.HumanReadable())
	}
	return data, nil
}
