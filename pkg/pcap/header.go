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
	"github.com/pcapio/pcapio/pkg/util/bytes"
)

const (
	// MagicNumber identifies a classic pcap file with microsecond
	// timestamp resolution, as written by a host with the same byte
	// order as the reading machine.
	MagicNumber uint32 = 0xa1b2c3d4
	// SwappedMagicNumber is the magic number as it appears when the file
	// was produced on a host with the opposite byte order. Encountering
	// it means every multi-byte field in the file must be swapped.
	SwappedMagicNumber uint32 = 0xd4c3b2a1

	// VersionMajor is the major digit of the pcap format this package
	// reads and writes.
	VersionMajor uint16 = 2
	// VersionMinor is the minor digit of the pcap format this package
	// reads and writes.
	VersionMinor uint16 = 4

	// SnapLenDefault is the default maximum number of octets retained
	// per record.
	SnapLenDefault uint32 = 65535
	// ZoneDefault is the default time zone correction in seconds.
	ZoneDefault int32 = 0

	// FileHeaderLen is the size of the on-disk file header.
	FileHeaderLen = 24
	// RecordHeaderLen is the size of the on-disk per-record header.
	RecordHeaderLen = 16
)

// FileHeader is the in-memory representation of the 24-byte header that
// prefixes every pcap file. Once a File is bound to an underlying file the
// header is immutable and always holds logical (host-order) values, no
// matter in which byte order the file is physically encoded.
type FileHeader struct {
	// Magic identifies the file format and the timestamp resolution
	// variant. Its byte order also signals whether the rest of the file
	// is swapped relative to the reading host.
	Magic uint32
	// VersionMajor is the major version of the pcap format.
	VersionMajor uint16
	// VersionMinor is the minor version of the pcap format.
	VersionMinor uint16
	// Zone is the correction in seconds between the capture host's time
	// zone and UTC. Conventionally zero.
	Zone int32
	// SigFigs is the accuracy of the timestamps. Unused by pretty much
	// everybody, but preserved verbatim.
	SigFigs uint32
	// SnapLen is the maximum number of octets stored per record. Longer
	// packets are truncated to this length.
	SnapLen uint32
	// LinkType identifies the framing of the packet payloads.
	LinkType uint32
}

// swapped returns a copy of the header with every multi-byte field
// converted to the opposite byte order.
func (h FileHeader) swapped() FileHeader {
	return FileHeader{
		Magic:        bytes.SwapUint32(h.Magic),
		VersionMajor: bytes.SwapUint16(h.VersionMajor),
		VersionMinor: bytes.SwapUint16(h.VersionMinor),
		Zone:         int32(bytes.SwapUint32(uint32(h.Zone))),
		SigFigs:      bytes.SwapUint32(h.SigFigs),
		SnapLen:      bytes.SwapUint32(h.SnapLen),
		LinkType:     bytes.SwapUint32(h.LinkType),
	}
}

// marshal encodes the header fields in host byte order.
func (h FileHeader) marshal() []byte {
	b := make([]byte, 0, FileHeaderLen)
	b = append(b, bytes.WriteUint32(h.Magic)...)
	b = append(b, bytes.WriteUint16(h.VersionMajor)...)
	b = append(b, bytes.WriteUint16(h.VersionMinor)...)
	b = append(b, bytes.WriteUint32(uint32(h.Zone))...)
	b = append(b, bytes.WriteUint32(h.SigFigs)...)
	b = append(b, bytes.WriteUint32(h.SnapLen)...)
	b = append(b, bytes.WriteUint32(h.LinkType)...)
	return b
}

// unmarshalFileHeader decodes the header fields in host byte order. The
// slice must hold at least FileHeaderLen octets.
func unmarshalFileHeader(b []byte) FileHeader {
	return FileHeader{
		Magic:        bytes.ReadUint32(b[0:4]),
		VersionMajor: bytes.ReadUint16(b[4:6]),
		VersionMinor: bytes.ReadUint16(b[6:8]),
		Zone:         int32(bytes.ReadUint32(b[8:12])),
		SigFigs:      bytes.ReadUint32(b[12:16]),
		SnapLen:      bytes.ReadUint32(b[16:20]),
		LinkType:     bytes.ReadUint32(b[20:24]),
	}
}
