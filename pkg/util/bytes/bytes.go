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

package bytes

import (
	"encoding/binary"
	"unsafe"
)

// NativeEndian represents the endianness of the current machine.
var NativeEndian binary.ByteOrder

func init() {
	buf := [2]byte{}
	*(*uint16)(unsafe.Pointer(&buf[0])) = uint16(0xABCD)

	switch buf {
	case [2]byte{0xCD, 0xAB}:
		NativeEndian = binary.LittleEndian
	case [2]byte{0xAB, 0xCD}:
		NativeEndian = binary.BigEndian
	default:
		panic("could not determine native endianness")
	}
}

// ReadUint16 reads the uint16 value from the byte slice.
func ReadUint16(b []byte) uint16 {
	return NativeEndian.Uint16(b)
}

// ReadUint32 reads the uint32 value from the byte slice.
func ReadUint32(b []byte) uint32 {
	return NativeEndian.Uint32(b)
}

// WriteUint16 writes the provided uint16 value to byte slice.
func WriteUint16(v uint16) (b []byte) {
	b = make([]byte, 2)
	NativeEndian.PutUint16(b, v)
	return
}

// WriteUint32 writes the provided uint32 value to byte slice.
func WriteUint32(v uint32) (b []byte) {
	b = make([]byte, 4)
	NativeEndian.PutUint32(b, v)
	return
}

// SwapUint16 exchanges the two octets of the value. Swapping is its own
// inverse, so applying it twice yields the original value.
func SwapUint16(v uint16) uint16 {
	return (v >> 8) | (v << 8)
}

// SwapUint32 reverses the octet order of the value. Swapping is its own
// inverse, so applying it twice yields the original value.
func SwapUint32(v uint32) uint32 {
	return ((v >> 24) & 0x000000ff) |
		((v >> 8) & 0x0000ff00) |
		((v << 8) & 0x00ff0000) |
		((v << 24) & 0xff000000)
}
