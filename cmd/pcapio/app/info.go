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
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/gopacket/layers"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pcapio/pcapio/cmd/pcapio/common"
	"github.com/pcapio/pcapio/pkg/config"
	"github.com/pcapio/pcapio/pkg/pcap"
	"github.com/pcapio/pcapio/pkg/util/bytes"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Show capture file summary",
	Args:  cobra.ExactArgs(1),
	RunE:  info,
}

var (
	infoConfig = config.NewWithOpts(config.WithInfo())
	infoAsJSON bool
)

func init() {
	infoConfig.MustViperize(infoCmd)
	infoCmd.Flags().BoolVar(&infoAsJSON, "json", false, "Renders the summary as JSON")
}

// Summary stores the capture file attributes rendered by the info command.
type Summary struct {
	File         string `json:"file"`
	Magic        string `json:"magic"`
	Version      string `json:"version"`
	ByteOrder    string `json:"byte.order"`
	TimeZone     int32  `json:"time.zone"`
	SigFigs      uint32 `json:"sig.figs"`
	SnapLen      uint32 `json:"snap.len"`
	LinkType     string `json:"link.type"`
	Records      uint64 `json:"records"`
	PayloadBytes uint64 `json:"payload.bytes"`
	Size         uint64 `json:"size"`
}

func info(cmd *cobra.Command, args []string) error {
	if err := common.InitConfigAndLogger(infoConfig); err != nil {
		return err
	}
	f, err := pcap.Open(args[0], pcap.ModeRead)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	var records, payload uint64
	for {
		rec, _, err := f.Read(nil)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		records++
		payload += uint64(rec.InclLen)
	}

	s := &Summary{
		File:         filepath.Base(f.Name()),
		Magic:        fmt.Sprintf("0x%08x", f.Magic()),
		Version:      fmt.Sprintf("%d.%d", f.VersionMajor(), f.VersionMinor()),
		ByteOrder:    fileByteOrder(f),
		TimeZone:     f.TimeZoneOffset(),
		SigFigs:      f.SigFigs(),
		SnapLen:      f.SnapLen(),
		LinkType:     linkTypeName(f.LinkType()),
		Records:      records,
		PayloadBytes: payload,
	}
	if fi, err := os.Stat(f.Name()); err == nil {
		s.Size = uint64(fi.Size())
	}

	if infoAsJSON {
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(b))
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Capture Summary")
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"File", s.File})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Magic", s.Magic})
	t.AppendRow(table.Row{"Version", s.Version})
	t.AppendRow(table.Row{"Byte order", s.ByteOrder})
	t.AppendRow(table.Row{"Time zone", s.TimeZone})
	t.AppendRow(table.Row{"Sig figs", s.SigFigs})
	t.AppendRow(table.Row{"Snap length", s.SnapLen})
	t.AppendRow(table.Row{"Link type", s.LinkType})
	t.AppendSeparator()
	t.AppendRow(table.Row{"Records", s.Records})
	t.AppendRow(table.Row{"Payload bytes", humanize.Bytes(s.PayloadBytes)})
	t.AppendRow(table.Row{"Capture size", humanize.Bytes(s.Size)})

	t.Render()

	return nil
}

// fileByteOrder derives the physical integer encoding of the capture file
// from the host order and the stream's swap flag.
func fileByteOrder(f *pcap.File) string {
	hostLittle := bytes.NativeEndian == binary.LittleEndian
	if hostLittle != f.IsSwapped() {
		return "little endian"
	}
	return "big endian"
}

// linkTypeName resolves well-known data link types to their names. Link
// types beyond the registered range are rendered numerically.
func linkTypeName(linkType uint32) string {
	if linkType > 255 {
		return fmt.Sprintf("%d", linkType)
	}
	return layers.LinkType(linkType).String()
}
