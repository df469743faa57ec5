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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileHeaderMarshalRoundTrip(t *testing.T) {
	h := FileHeader{
		Magic:        MagicNumber,
		VersionMajor: VersionMajor,
		VersionMinor: VersionMinor,
		Zone:         -28800,
		SigFigs:      6,
		SnapLen:      1024,
		LinkType:     1,
	}
	b := h.marshal()
	assert.Len(t, b, FileHeaderLen)
	assert.Equal(t, h, unmarshalFileHeader(b))
}

func TestFileHeaderSwapInvolution(t *testing.T) {
	h := FileHeader{
		Magic:        MagicNumber,
		VersionMajor: VersionMajor,
		VersionMinor: VersionMinor,
		Zone:         3600,
		SigFigs:      0,
		SnapLen:      SnapLenDefault,
		LinkType:     105,
	}
	assert.Equal(t, SwappedMagicNumber, h.swapped().Magic)
	assert.Equal(t, h, h.swapped().swapped())
}

func TestRecordHeaderMarshalRoundTrip(t *testing.T) {
	r := RecordHeader{TsSec: 1633024800, TsUsec: 250000, InclLen: 64, OrigLen: 1500}
	b := r.marshal()
	assert.Len(t, b, RecordHeaderLen)
	assert.Equal(t, r, unmarshalRecordHeader(b))
}

func TestRecordHeaderSwapInvolution(t *testing.T) {
	r := RecordHeader{TsSec: 1, TsUsec: 2, InclLen: 3, OrigLen: 4}
	assert.Equal(t, r, r.swapped().swapped())
	assert.NotEqual(t, r, r.swapped())
}

func TestRecordHeaderTime(t *testing.T) {
	r := RecordHeader{TsSec: 1633024800, TsUsec: 250000}
	ts := r.Time()
	assert.Equal(t, int64(1633024800), ts.Unix())
	assert.Equal(t, 250000*1000, ts.Nanosecond())
}
