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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwapUint16(t *testing.T) {
	assert.Equal(t, uint16(0x3412), SwapUint16(0x1234))
	assert.Equal(t, uint16(0x1234), SwapUint16(SwapUint16(0x1234)))
	assert.Equal(t, uint16(0), SwapUint16(0))
	assert.Equal(t, uint16(0xffff), SwapUint16(0xffff))
}

func TestSwapUint32(t *testing.T) {
	assert.Equal(t, uint32(0xd4c3b2a1), SwapUint32(0xa1b2c3d4))
	assert.Equal(t, uint32(0xa1b2c3d4), SwapUint32(SwapUint32(0xa1b2c3d4)))
	assert.Equal(t, uint32(0), SwapUint32(0))
	assert.Equal(t, uint32(0xffffffff), SwapUint32(0xffffffff))
}

func TestReadWriteRoundTrip(t *testing.T) {
	assert.Equal(t, uint16(0xbeef), ReadUint16(WriteUint16(0xbeef)))
	assert.Equal(t, uint32(0xa1b2c3d4), ReadUint32(WriteUint32(0xa1b2c3d4)))
}
