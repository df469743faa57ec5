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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffReflexivity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "same.pcap")
	writeCapture(t, path, [][]byte{
		{0x01, 0x02, 0x03},
		{0x04, 0x05},
		{0x06},
	})

	d, err := Diff(path, path, SnapLenDefault)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDiffDetectsPayloadByte(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.pcap")
	second := filepath.Join(dir, "second.pcap")

	writeCapture(t, first, [][]byte{
		{0x01, 0x02, 0x03},
		{0x04, 0x05, 0x06},
		{0x07, 0x08, 0x09},
	})
	writeCapture(t, second, [][]byte{
		{0x01, 0x02, 0x03},
		{0x04, 0xff, 0x06},
		{0x07, 0x08, 0x09},
	})

	d, err := Diff(first, second, SnapLenDefault)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "record payload differs", d.Reason)
	// the diverging record is the second one, written with ts (101, 10)
	assert.Equal(t, uint32(101), d.TsSec)
	assert.Equal(t, uint32(10), d.TsUsec)
}

func TestDiffHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "eth.pcap")
	second := filepath.Join(dir, "snap.pcap")

	writeCapture(t, first, [][]byte{{0x01}})
	writeCapture(t, second, [][]byte{{0x01}}, WithSnapLen(1024))

	d, err := Diff(first, second, SnapLenDefault)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "file headers differ", d.Reason)
}

func TestDiffRecordCountMismatch(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "two.pcap")
	second := filepath.Join(dir, "three.pcap")

	writeCapture(t, first, [][]byte{{0x01}, {0x02}})
	writeCapture(t, second, [][]byte{{0x01}, {0x02}, {0x03}})

	d, err := Diff(first, second, SnapLenDefault)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "record count differs", d.Reason)
	// the surplus record carries ts (102, 20)
	assert.Equal(t, uint32(102), d.TsSec)
	assert.Equal(t, uint32(20), d.TsUsec)
}

func TestDiffLengthMismatch(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "short.pcap")
	second := filepath.Join(dir, "long.pcap")

	writeCapture(t, first, [][]byte{{0x01, 0x02}})
	writeCapture(t, second, [][]byte{{0x01, 0x02, 0x03}})

	d, err := Diff(first, second, SnapLenDefault)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "included length differs", d.Reason)
	assert.Equal(t, uint32(100), d.TsSec)
}

func TestDiffIgnoresPhysicalByteOrder(t *testing.T) {
	dir := t.TempDir()
	native := filepath.Join(dir, "native.pcap")
	swapped := filepath.Join(dir, "swapped.pcap")
	payloads := [][]byte{{0xca, 0xfe, 0xba, 0xbe}}

	writeCapture(t, native, payloads)
	writeCapture(t, swapped, payloads, WithByteOrderSwapped(true))

	// logically identical captures compare equal regardless of how they
	// are physically encoded
	d, err := Diff(native, swapped, SnapLenDefault)
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDiffSnapLenBoundsComparison(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.pcap")
	second := filepath.Join(dir, "b.pcap")

	a := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}
	b := append([]byte(nil), a...)
	b[9] = 0xff

	writeCapture(t, first, [][]byte{a})
	writeCapture(t, second, [][]byte{b})

	// the files differ only past the comparison bound
	d, err := Diff(first, second, 8)
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = Diff(first, second, SnapLenDefault)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "record payload differs", d.Reason)
}

func TestDiffOpenFailure(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.pcap")
	writeCapture(t, valid, [][]byte{{0x01}})

	_, err := Diff(valid, filepath.Join(dir, "no-such.pcap"), SnapLenDefault)
	assert.Error(t, err)

	_, err = Diff(filepath.Join(dir, "missing.pcap"), valid, SnapLenDefault)
	assert.Error(t, err)
}
