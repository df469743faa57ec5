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
	"expvar"
	"io"
	"os"
)

var (
	readRecords  = expvar.NewInt("pcap.reader.records")
	readBytes    = expvar.NewInt("pcap.reader.bytes")
	writeRecords = expvar.NewInt("pcap.writer.records")
	writeBytes   = expvar.NewInt("pcap.writer.bytes")
	truncations  = expvar.NewInt("pcap.writer.truncations")
	formatErrors = expvar.NewInt("pcap.format.errors")
)

// File is a stream bound to a single underlying capture file. It owns the
// file handle exclusively, tracks the validated or constructed header and
// remembers whether the on-disk encoding is byte-swapped relative to the
// host. Once past the header, the stream position is always located on a
// record boundary, so positions are effectively measured in packets rather
// than bytes.
//
// A File must not be shared between goroutines. Serializing access is the
// caller's responsibility.
type File struct {
	path      string
	f         *os.File
	mode      Mode
	hdr       FileHeader
	hasHeader bool
	// swapMode records that the physical field encoding in the file is
	// the opposite of the host byte order, which makes every header
	// round-trip through a swap on its way to or from the disk.
	swapMode bool
}

// Open opens or creates the capture file at path according to the access
// mode. For modes that expect a header on disk the header is immediately
// read and validated, and the open fails as a whole when validation fails.
// No handle is left behind on any failure path.
func Open(path string, mode Mode) (*File, error) {
	fd, err := os.OpenFile(path, mode.openFlag(), 0644)
	if err != nil {
		return nil, err
	}
	f := &File{path: path, f: fd, mode: mode}
	if mode.headerExpected() {
		if err := f.readAndValidateHeader(); err != nil {
			_ = fd.Close()
			return nil, err
		}
		if mode.appendAtEnd() {
			if _, err := fd.Seek(0, io.SeekEnd); err != nil {
				_ = fd.Close()
				return nil, err
			}
		}
	}
	return f, nil
}

// readAndValidateHeader reads the 24-byte file header, inspects the magic
// number against the two recognized constants and normalizes the remaining
// fields into host order when the swapped constant matched.
func (f *File) readAndValidateHeader() error {
	b := make([]byte, FileHeaderLen)
	if _, err := io.ReadFull(f.f, b); err != nil {
		formatErrors.Add(1)
		return errShortFileHeader(err)
	}
	hdr := unmarshalFileHeader(b)
	switch hdr.Magic {
	case MagicNumber:
		f.swapMode = false
	case SwappedMagicNumber:
		f.swapMode = true
		hdr = hdr.swapped()
	default:
		formatErrors.Add(1)
		return ErrMagicMismatch
	}
	f.hdr = hdr
	f.hasHeader = true
	return nil
}

// Option configures header construction in Init.
type Option func(*opts)

type opts struct {
	snapLen uint32
	zone    int32
	swap    bool
}

// WithSnapLen overrides the default maximum number of octets retained per
// record.
func WithSnapLen(snapLen uint32) Option {
	return func(o *opts) {
		o.snapLen = snapLen
	}
}

// WithTimeZoneCorrection sets the offset in seconds between the capture
// location's time zone and UTC.
func WithTimeZoneCorrection(zone int32) Option {
	return func(o *opts) {
		o.zone = zone
	}
}

// WithByteOrderSwapped forces the file to be physically encoded in the
// byte order opposite to the host's. The in-memory header keeps reporting
// logical values.
func WithByteOrderSwapped(swap bool) Option {
	return func(o *opts) {
		o.swap = swap
	}
}

// Init constructs the file header and writes it at the start of the file.
// It is only valid on a stream opened with ModeWrite that has no header
// yet; any content a previous file had at this path was already discarded
// by the truncating open. The header is immutable afterwards, so calling
// Init a second time, or on a stream whose header was validated during
// open, is an error.
func (f *File) Init(linkType uint32, options ...Option) error {
	if f.hasHeader {
		return ErrHeaderExists
	}
	if f.mode != ModeWrite {
		return ErrInitNotAllowed
	}
	o := &opts{snapLen: SnapLenDefault, zone: ZoneDefault}
	for _, opt := range options {
		opt(o)
	}
	hdr := FileHeader{
		Magic:        MagicNumber,
		VersionMajor: VersionMajor,
		VersionMinor: VersionMinor,
		Zone:         o.zone,
		SigFigs:      0,
		SnapLen:      o.snapLen,
		LinkType:     linkType,
	}
	physical := hdr
	if o.swap {
		physical = hdr.swapped()
	}
	if _, err := f.f.Write(physical.marshal()); err != nil {
		return err
	}
	f.hdr = hdr
	f.hasHeader = true
	f.swapMode = o.swap
	return nil
}

// Write appends one record to the stream. The included length is the
// packet length clamped to the snap length the file was initialized with;
// truncating oversized packets is regular format behavior, not an error.
// origLen is the length the packet had before any truncation and is taken
// from the data itself when zero or implausibly small.
func (f *File) Write(tsSec, tsUsec uint32, data []byte, origLen uint32) error {
	if !f.mode.writable() {
		return ErrNotWritable
	}
	if !f.hasHeader {
		return ErrNoHeader
	}
	incl := uint32(len(data))
	if incl > f.hdr.SnapLen {
		incl = f.hdr.SnapLen
		truncations.Add(1)
	}
	if origLen < incl {
		origLen = uint32(len(data))
	}
	rec := RecordHeader{TsSec: tsSec, TsUsec: tsUsec, InclLen: incl, OrigLen: origLen}
	if f.swapMode {
		rec = rec.swapped()
	}
	if _, err := f.f.Write(rec.marshal()); err != nil {
		return err
	}
	if _, err := f.f.Write(data[:incl]); err != nil {
		return err
	}
	writeRecords.Add(1)
	writeBytes.Add(int64(incl))
	return nil
}

// Read reads the next record header and copies up to len(p) octets of the
// record payload into p. The returned header always holds logical values
// and n reports how many octets were copied, which is less than the
// included length whenever the caller's buffer is smaller. Payload octets
// that didn't fit are consumed anyway so the stream stays positioned on
// the next record boundary.
//
// Read returns io.EOF once no further record header can be read. A record
// header that declares more payload than the file holds yields an error
// satisfying IsFormatError.
func (f *File) Read(p []byte) (RecordHeader, int, error) {
	if !f.mode.readable() {
		return RecordHeader{}, 0, ErrNotReadable
	}
	if !f.hasHeader {
		return RecordHeader{}, 0, ErrNoHeader
	}
	b := make([]byte, RecordHeaderLen)
	if _, err := io.ReadFull(f.f, b); err != nil {
		if err == io.EOF {
			return RecordHeader{}, 0, io.EOF
		}
		formatErrors.Add(1)
		return RecordHeader{}, 0, errShortRecordHeader(err)
	}
	rec := unmarshalRecordHeader(b)
	if f.swapMode {
		rec = rec.swapped()
	}
	n := int(rec.InclLen)
	if n > len(p) {
		n = len(p)
	}
	if _, err := io.ReadFull(f.f, p[:n]); err != nil {
		formatErrors.Add(1)
		return rec, 0, errShortRecord(rec.InclLen, err)
	}
	if rem := int64(rec.InclLen) - int64(n); rem > 0 {
		if _, err := io.CopyN(io.Discard, f.f, rem); err != nil {
			formatErrors.Add(1)
			return rec, n, errShortRecord(rec.InclLen, err)
		}
	}
	readRecords.Add(1)
	readBytes.Add(int64(n))
	return rec, n, nil
}

// Close releases the underlying file handle. It is idempotent and a no-op
// on a stream that was never opened.
func (f *File) Close() error {
	if f == nil || f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}

// Name returns the path the stream was opened with.
func (f *File) Name() string { return f.path }

// Header returns the validated or constructed file header with logical
// (host-order) field values.
func (f *File) Header() FileHeader { return f.hdr }

// Magic returns the magic number of the file header.
func (f *File) Magic() uint32 { return f.hdr.Magic }

// VersionMajor returns the major version digit of the file format.
func (f *File) VersionMajor() uint16 { return f.hdr.VersionMajor }

// VersionMinor returns the minor version digit of the file format.
func (f *File) VersionMinor() uint16 { return f.hdr.VersionMinor }

// TimeZoneOffset returns the time zone correction in seconds.
func (f *File) TimeZoneOffset() int32 { return f.hdr.Zone }

// SigFigs returns the timestamp accuracy field.
func (f *File) SigFigs() uint32 { return f.hdr.SigFigs }

// SnapLen returns the maximum number of octets stored per record.
func (f *File) SnapLen() uint32 { return f.hdr.SnapLen }

// LinkType returns the data link type of the packet payloads.
func (f *File) LinkType() uint32 { return f.hdr.LinkType }

// IsSwapped reports whether the physical encoding of the file is in the
// byte order opposite to the host's.
func (f *File) IsSwapped() bool { return f.swapMode }
