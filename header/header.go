// This file is part of n64cart.
//
// n64cart is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64cart is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64cart.  If not, see <https://www.gnu.org/licenses/>.

package header

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/n64cart/curated"
	"github.com/jetsetilly/n64cart/layout"
)

// Default values for a newly created header.
const (
	DefaultCartTiming uint32 = 0x80371240
	DefaultClockRate  uint32 = 0x0000000f
)

// NameLen is the length of the name field. The name is not null terminated.
const NameLen = 20

// Sentinal error patterns.
const (
	WriteError = "header: %v"
	ReadError  = "header: need %d bytes but have %d"
)

// RomHeader is the structured form of the header region. The fields are
// listed in the order in which they appear in the image.
type RomHeader struct {
	// 0x00 - PI domain 1 timing. also used to detect the byte swapping of
	// an image
	CartTiming uint32

	// 0x04
	ClockRate uint32

	// 0x08 - address the load region is copied to by the boot code
	LoadAddr uint32

	// 0x0c
	Release uint32

	// 0x10 and 0x14 - the two boot checksum words
	CRC1 uint32
	CRC2 uint32

	// 0x18 and 0x1c
	Reserved18 uint32
	Reserved1C uint32

	// 0x20 - raw bytes. interpretation as text is left to the caller
	Name [NameLen]byte

	// 0x34
	Reserved34 uint32

	// 0x38
	ManufID uint32

	// 0x3c
	CartID uint16

	// 0x3e
	CountryCode uint16
}

// NewRomHeader is the preferred method of initialisation for the RomHeader
// type.
func NewRomHeader() RomHeader {
	return RomHeader{
		CartTiming: DefaultCartTiming,
		ClockRate:  DefaultClockRate,
	}
}

// fieldWriter writes big-endian values to an io.Writer. after the first
// error all further writes are ignored.
type fieldWriter struct {
	w       io.Writer
	scratch [4]byte
	err     error
}

func (fw *fieldWriter) write(b []byte) {
	if fw.err != nil {
		return
	}
	_, fw.err = fw.w.Write(b)
}

func (fw *fieldWriter) u32(v uint32) {
	binary.BigEndian.PutUint32(fw.scratch[:], v)
	fw.write(fw.scratch[:4])
}

func (fw *fieldWriter) u16(v uint16) {
	binary.BigEndian.PutUint16(fw.scratch[:], v)
	fw.write(fw.scratch[:2])
}

// Serialize writes exactly layout.HeaderLen bytes to w. The only error
// returned is one from the writer itself, wrapped in the WriteError pattern.
func (hdr *RomHeader) Serialize(w io.Writer) error {
	fw := &fieldWriter{w: w}

	fw.u32(hdr.CartTiming)
	fw.u32(hdr.ClockRate)
	fw.u32(hdr.LoadAddr)
	fw.u32(hdr.Release)
	fw.u32(hdr.CRC1)
	fw.u32(hdr.CRC2)
	fw.u32(hdr.Reserved18)
	fw.u32(hdr.Reserved1C)
	fw.write(hdr.Name[:])
	fw.u32(hdr.Reserved34)
	fw.u32(hdr.ManufID)
	fw.u16(hdr.CartID)
	fw.u16(hdr.CountryCode)

	if fw.err != nil {
		return curated.Errorf(WriteError, fw.err)
	}
	return nil
}

// Bytes returns the serialized header.
func (hdr *RomHeader) Bytes() []byte {
	var b bytes.Buffer
	b.Grow(layout.HeaderLen)

	// writing to a bytes.Buffer does not fail
	_ = hdr.Serialize(&b)

	return b.Bytes()
}

// FromBytes creates a RomHeader from the first layout.HeaderLen bytes of
// data. The data should be in native byte order.
func FromBytes(data []byte) (RomHeader, error) {
	if len(data) < layout.HeaderLen {
		return RomHeader{}, curated.Errorf(ReadError, layout.HeaderLen, len(data))
	}

	be := binary.BigEndian

	hdr := RomHeader{
		CartTiming:  be.Uint32(data[0x00:]),
		ClockRate:   be.Uint32(data[0x04:]),
		LoadAddr:    be.Uint32(data[0x08:]),
		Release:     be.Uint32(data[0x0c:]),
		CRC1:        be.Uint32(data[layout.CRC1:]),
		CRC2:        be.Uint32(data[layout.CRC2:]),
		Reserved18:  be.Uint32(data[0x18:]),
		Reserved1C:  be.Uint32(data[0x1c:]),
		Reserved34:  be.Uint32(data[0x34:]),
		ManufID:     be.Uint32(data[0x38:]),
		CartID:      be.Uint16(data[0x3c:]),
		CountryCode: be.Uint16(data[0x3e:]),
	}
	copy(hdr.Name[:], data[0x20:0x20+NameLen])

	return hdr, nil
}

// Title returns the name field as a string with trailing padding (spaces and
// zero bytes) removed.
func (hdr *RomHeader) Title() string {
	return strings.TrimRight(string(hdr.Name[:]), " \x00")
}

// SetTitle sets the name field. Titles longer than NameLen are truncated and
// shorter titles are padded with spaces.
func (hdr *RomHeader) SetTitle(title string) {
	n := copy(hdr.Name[:], title)
	for i := n; i < NameLen; i++ {
		hdr.Name[i] = ' '
	}
}

func (hdr *RomHeader) String() string {
	return fmt.Sprintf("%q load=0x%08x release=0x%08x crc=%08x/%08x",
		hdr.Title(), hdr.LoadAddr, hdr.Release, hdr.CRC1, hdr.CRC2)
}
