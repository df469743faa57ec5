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
	stdbytes "bytes"
	"io"
)

// Divergence describes the first point at which two capture files stop
// being identical.
type Divergence struct {
	// TsSec is the seconds part of the diverging record's timestamp. Zero
	// when the divergence is in the file headers.
	TsSec uint32
	// TsUsec is the microseconds part of the diverging record's
	// timestamp.
	TsUsec uint32
	// Reason names the field or content that diverged.
	Reason string
}

// Diff compares two capture files record by record and octet by octet.
// It returns nil when the files are identical, or a Divergence locating
// the first mismatch: differing file headers, one file holding more
// records than the other, differing included or original lengths, or a
// payload difference within the first min(inclLen, snapLen) octets of a
// record pair. A non-nil error means one of the files could not be opened
// or decoded at all.
//
// Records are consumed in lock step with one snapLen-sized buffer per
// side, so captures of any size can be compared in constant memory. The
// snap length bounds the comparison independently on each side, matching
// the stored included lengths only when they are smaller.
func Diff(f1, f2 string, snapLen uint32) (*Divergence, error) {
	a, err := Open(f1, ModeRead)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = a.Close()
	}()
	b, err := Open(f2, ModeRead)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = b.Close()
	}()

	if a.Header() != b.Header() {
		return &Divergence{Reason: "file headers differ"}, nil
	}

	bufA := make([]byte, snapLen)
	bufB := make([]byte, snapLen)

	for {
		recA, nA, errA := a.Read(bufA)
		recB, nB, errB := b.Read(bufB)

		if errA != nil && errA != io.EOF {
			return nil, errA
		}
		if errB != nil && errB != io.EOF {
			return nil, errB
		}
		switch {
		case errA == io.EOF && errB == io.EOF:
			return nil, nil
		case errA == io.EOF:
			return &Divergence{TsSec: recB.TsSec, TsUsec: recB.TsUsec, Reason: "record count differs"}, nil
		case errB == io.EOF:
			return &Divergence{TsSec: recA.TsSec, TsUsec: recA.TsUsec, Reason: "record count differs"}, nil
		}

		if recA.InclLen != recB.InclLen {
			return &Divergence{TsSec: recA.TsSec, TsUsec: recA.TsUsec, Reason: "included length differs"}, nil
		}
		if recA.OrigLen != recB.OrigLen {
			return &Divergence{TsSec: recA.TsSec, TsUsec: recA.TsUsec, Reason: "original length differs"}, nil
		}
		if !stdbytes.Equal(bufA[:nA], bufB[:nB]) {
			return &Divergence{TsSec: recA.TsSec, TsUsec: recA.TsUsec, Reason: "record payload differs"}, nil
		}
	}
}
