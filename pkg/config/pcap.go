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

package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pcapio/pcapio/pkg/pcap"
)

const (
	diffSnapLen    = "diff.snap-len"
	rewriteSnapLen = "rewrite.snap-len"
	rewriteSwap    = "rewrite.swap-byte-order"
)

// PcapConfig stores the settings that influence capture file comparison
// and rewriting.
type PcapConfig struct {
	// DiffSnapLen bounds how many payload octets per record the diff
	// engine compares.
	DiffSnapLen uint32 `json:"diff.snap-len" yaml:"diff.snap-len"`
	// RewriteSnapLen is the snap length rewritten captures are
	// re-truncated to.
	RewriteSnapLen uint32 `json:"rewrite.snap-len" yaml:"rewrite.snap-len"`
	// RewriteSwapByteOrder forces rewritten captures to be physically
	// encoded in the byte order opposite to the host's.
	RewriteSwapByteOrder bool `json:"rewrite.swap-byte-order" yaml:"rewrite.swap-byte-order"`
}

// InitFromViper initializes pcap configuration from Viper.
func (c *PcapConfig) InitFromViper(v *viper.Viper) {
	c.DiffSnapLen = v.GetUint32(diffSnapLen)
	c.RewriteSnapLen = v.GetUint32(rewriteSnapLen)
	c.RewriteSwapByteOrder = v.GetBool(rewriteSwap)
}

// AddFlags registers pcap flags.
func (c *PcapConfig) AddFlags(flags *pflag.FlagSet) {
	flags.Uint32(diffSnapLen, pcap.SnapLenDefault, "Bounds how many payload octets per record are compared")
	flags.Uint32(rewriteSnapLen, pcap.SnapLenDefault, "Specifies the snap length rewritten captures are re-truncated to")
	flags.Bool(rewriteSwap, false, "Encodes the rewritten capture in the byte order opposite to the host's")
}
