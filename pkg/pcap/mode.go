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

import "os"

// Mode selects the access policy of a capture file stream. It replaces
// fopen-style mode strings with a closed enumeration where every member
// maps explicitly to open flags, header expectations and the file position
// the stream lands on after a successful open.
type Mode uint8

const (
	// ModeRead opens an existing file for reading only. The file header
	// is read and validated and the stream is positioned at the first
	// record.
	ModeRead Mode = iota
	// ModeWrite creates a new file, or truncates an existing one, for
	// reading and writing. No header is assumed to exist and the caller
	// must call Init before writing records.
	ModeWrite
	// ModeAppend opens an existing file with a valid header and positions
	// the stream at the end of the file. The stream is write-only.
	ModeAppend
	// ModeReadWrite opens an existing file with a valid header for both
	// reading and writing. The stream is positioned at the first record.
	ModeReadWrite
	// ModeReadAppend opens an existing file with a valid header for
	// reading and appending. The stream is positioned at the end of
	// the file.
	ModeReadAppend
)

// String returns the fopen-equivalent spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "r"
	case ModeWrite:
		return "w"
	case ModeAppend:
		return "a"
	case ModeReadWrite:
		return "r+"
	case ModeReadAppend:
		return "a+"
	default:
		return "?"
	}
}

// openFlag maps the mode to os.OpenFile flags. All modes operate on binary
// streams, so no text translation is ever involved. Append modes open the
// file descriptor in read-write mode regardless of the stream policy since
// the header must be read back and validated before any record is written.
func (m Mode) openFlag() int {
	switch m {
	case ModeRead:
		return os.O_RDONLY
	case ModeWrite:
		return os.O_RDWR | os.O_CREATE | os.O_TRUNC
	case ModeAppend, ModeReadAppend:
		return os.O_RDWR | os.O_APPEND
	case ModeReadWrite:
		return os.O_RDWR
	default:
		return os.O_RDONLY
	}
}

// headerExpected designates modes that require a valid file header to be
// present on disk at open time.
func (m Mode) headerExpected() bool {
	return m != ModeWrite
}

// appendAtEnd designates modes that leave the stream positioned at the end
// of the file after open.
func (m Mode) appendAtEnd() bool {
	return m == ModeAppend || m == ModeReadAppend
}

// readable reports whether records can be read back through the stream.
func (m Mode) readable() bool {
	return m != ModeAppend
}

// writable reports whether records can be written through the stream.
func (m Mode) writable() bool {
	return m != ModeRead
}
