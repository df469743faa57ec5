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
	"time"

	"github.com/pcapio/pcapio/pkg/util/bytes"
)

// RecordHeader is the 16-byte header written immediately before each
// packet's raw octets. Invariant: InclLen <= OrigLen and InclLen never
// exceeds the snap length the file was initialized with.
type RecordHeader struct {
	// TsSec is the seconds part of the packet timestamp.
	TsSec uint32
	// TsUsec is the microseconds part of the packet timestamp.
	TsUsec uint32
	// InclLen is the number of packet octets actually stored in the file.
	InclLen uint32
	// OrigLen is the length the packet had on the wire before any
	// truncation.
	OrigLen uint32
}

// Time returns the record timestamp.
func (r RecordHeader) Time() time.Time {
	return time.Unix(int64(r.TsSec), int64(r.TsUsec)*int64(time.Microsecond))
}

// swapped returns a copy of the record header with every field converted
// to the opposite byte order.
func (r RecordHeader) swapped() RecordHeader {
	return RecordHeader{
		TsSec:   bytes.SwapUint32(r.TsSec),
		TsUsec:  bytes.SwapUint32(r.TsUsec),
		InclLen: bytes.SwapUint32(r.InclLen),
		OrigLen: bytes.SwapUint32(r.OrigLen),
	}
}

// marshal encodes the record header fields in host byte order.
func (r RecordHeader) marshal() []byte {
	b := make([]byte, 0, RecordHeaderLen)
	b = append(b, bytes.WriteUint32(r.TsSec)...)
	b = append(b, bytes.WriteUint32(r.TsUsec)...)
	b = append(b, bytes.WriteUint32(r.InclLen)...)
	b = append(b, bytes.WriteUint32(r.OrigLen)...)
	return b
}

// unmarshalRecordHeader decodes the record header fields in host byte
// order. The slice must hold at least RecordHeaderLen octets.
func unmarshalRecordHeader(b []byte) RecordHeader {
	return RecordHeader{
		TsSec:   bytes.ReadUint32(b[0:4]),
		TsUsec:  bytes.ReadUint32(b[4:8]),
		InclLen: bytes.ReadUint32(b[8:12]),
		OrigLen: bytes.ReadUint32(b[12:16]),
	}
}
