/*
 * Copyright 2021-2022 by the pcapio authors
 * https://github.com/pcapio/pcapio
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package pcap

import (
	"errors"
	"fmt"
)

var (
	// ErrMagicMismatch signals that the first four octets of the file are
	// neither the native nor the byte-swapped magic number.
	ErrMagicMismatch = errors.New("invalid pcap file magic number")

	// ErrCorrupted is the base error for files that end before satisfying
	// the lengths their own headers declare.
	ErrCorrupted = errors.New("pcap file is corrupted")

	// ErrHeaderExists is returned when Init is invoked on a stream whose
	// header was already written or validated.
	ErrHeaderExists = errors.New("pcap file header already exists")

	// ErrNoHeader is returned when records are written or read through a
	// stream before Init established the file header.
	ErrNoHeader = errors.New("pcap file header has not been written yet")

	// ErrInitNotAllowed is returned when Init is invoked on a stream that
	// was not opened in a creating mode.
	ErrInitNotAllowed = errors.New("stream mode doesn't permit header initialization")

	// ErrNotWritable is returned when records are written through a
	// read-only stream.
	ErrNotWritable = errors.New("stream is not opened for writing")

	// ErrNotReadable is returned when records are read through a
	// write-only stream.
	ErrNotReadable = errors.New("stream is not opened for reading")

	// errShortFileHeader is produced when the file ends before a full
	// 24-byte file header could be read.
	errShortFileHeader = func(err error) error {
		return fmt.Errorf("file header cut short: %v: %w", err, ErrCorrupted)
	}
	// errShortRecordHeader is produced when the file ends in the middle
	// of a record header.
	errShortRecordHeader = func(err error) error {
		return fmt.Errorf("record header cut short: %v: %w", err, ErrCorrupted)
	}
	// errShortRecord is produced when a record header declares more
	// payload octets than remain in the file.
	errShortRecord = func(incl uint32, err error) error {
		return fmt.Errorf("record payload shorter than %d declared octets: %v: %w", incl, err, ErrCorrupted)
	}
)

// IsFormatError determines whether the error denotes an unrecognized or
// corrupted capture file as opposed to an I/O or misuse failure.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrMagicMismatch) || errors.Is(err, ErrCorrupted)
}
