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

package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pcapio/pcapio/cmd/pcapio/common"
	"github.com/pcapio/pcapio/pkg/config"
	"github.com/pcapio/pcapio/pkg/pcap"
	"github.com/pcapio/pcapio/pkg/util/spinner"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [source] [target]",
	Short: "Re-encode a capture file with a different snap length or byte order",
	Args:  cobra.ExactArgs(2),
	RunE:  rewrite,
}

var rewriteConfig = config.NewWithOpts(config.WithRewrite())

func init() {
	rewriteConfig.MustViperize(rewriteCmd)
}

type rewriteStats struct {
	target string

	records   uint64
	bytes     uint64
	truncated uint64
}

func (s *rewriteStats) printStats() {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Rewrite Statistics")
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"File", filepath.Base(s.target)})
	t.AppendSeparator()

	t.AppendRow(table.Row{"Records written", s.records})
	t.AppendRow(table.Row{"Bytes written", s.bytes})
	t.AppendRow(table.Row{"Records truncated", s.truncated})

	f, err := os.Stat(s.target)
	if err != nil {
		t.Render()
		return
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"Capture size", humanize.Bytes(uint64(f.Size()))})

	t.Render()
}

func rewrite(cmd *cobra.Command, args []string) error {
	if err := common.InitConfigAndLogger(rewriteConfig); err != nil {
		return err
	}

	src, err := pcap.Open(args[0], pcap.ModeRead)
	if err != nil {
		return err
	}
	defer func() {
		_ = src.Close()
	}()

	dst, err := pcap.Open(args[1], pcap.ModeWrite)
	if err != nil {
		return err
	}
	defer func() {
		_ = dst.Close()
	}()

	snapLen := rewriteConfig.Pcap.RewriteSnapLen
	err = dst.Init(
		src.LinkType(),
		pcap.WithSnapLen(snapLen),
		pcap.WithTimeZoneCorrection(src.TimeZoneOffset()),
		pcap.WithByteOrderSwapped(rewriteConfig.Pcap.RewriteSwapByteOrder),
	)
	if err != nil {
		return err
	}

	spin := spinner.Show("Rewriting capture")
	stats := &rewriteStats{target: args[1]}
	buf := make([]byte, src.SnapLen())
	for {
		rec, n, err := src.Read(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			spin.Stop()
			return err
		}
		if err := dst.Write(rec.TsSec, rec.TsUsec, buf[:n], rec.OrigLen); err != nil {
			spin.Stop()
			return err
		}
		stats.records++
		if uint32(n) > snapLen {
			stats.truncated++
			n = int(snapLen)
		}
		stats.bytes += uint64(n)
	}
	spin.Stop()

	stats.printStats()

	return nil
}
