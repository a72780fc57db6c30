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

package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/n64cart/byteswap"
	"github.com/jetsetilly/n64cart/checksum"
	"github.com/jetsetilly/n64cart/header"
	"github.com/jetsetilly/n64cart/layout"
	"github.com/jetsetilly/n64cart/statsview"
	"github.com/jetsetilly/n64cart/test"
)

// makeROM returns a minimum length image in native byte order with a
// default header and every byte of the boot code and load region set to
// fill.
func makeROM(fill byte) []byte {
	d := make([]byte, layout.RomLen)
	for i := layout.BootCodeStart; i < len(d); i++ {
		d[i] = fill
	}

	hdr := header.NewRomHeader()
	hdr.SetTitle("GOPHER")
	hdr.LoadAddr = 0x80000400
	copy(d, hdr.Bytes())

	return d
}

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0644))
	return fn
}

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	tw := &test.CompareWriter{}
	r := launch(args, tw)
	return r, tw.String()
}

func TestHelp(t *testing.T) {
	r, out := run(t, "-help")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "available sub-modes: INFO, DETECT, SWAP, CHECKSUM, HEADER, SCAN, VERSION"))
	test.ExpectSuccess(t, strings.Contains(out, "recognised file extensions: .Z64 .V64 .BIN .ROM"), out)
}

func TestInfo(t *testing.T) {
	fn := writeROM(t, "gopher.z64", makeROM(0x41))

	r, out := run(t, fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "swapping:    Native\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "title:       GOPHER\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "load addr:   80000400\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "calculated:  fdcf52e1 cd5a4ddc\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "match:       false\n"), out)

	// explicit mode and a byte swapped image give the same header
	d := makeROM(0x41)
	test.DemandSuccess(t, byteswap.ConvertTo(byteswap.U16LittleEndian, d))
	fn = writeROM(t, "gopher.v64", d)

	r, out = run(t, "info", fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "swapping:    U16 Little Endian\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "title:       GOPHER\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "calculated:  fdcf52e1 cd5a4ddc\n"), out)
}

func TestInfoShortAndUnrecognised(t *testing.T) {
	fn := writeROM(t, "short.z64", makeROM(0x00)[:layout.BootCodeEnd])
	r, out := run(t, "info", fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "calculated:  image too short\n"), out)

	fn = writeROM(t, "junk.bin", []byte("not a cartridge"))
	r, out = run(t, "info", fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "swapping:    unrecognised\n"), out)

	r, _ = run(t, "info")
	test.ExpectEquality(t, r, exitModeError)

	r, _ = run(t, "info", filepath.Join(t.TempDir(), "missing.z64"))
	test.ExpectEquality(t, r, exitModeError)
}

func TestDetect(t *testing.T) {
	native := writeROM(t, "a.z64", []byte{0x80, 0x37, 0x12, 0x40})
	swapped := writeROM(t, "b.v64", []byte{0x37, 0x80, 0x40, 0x12})
	junk := writeROM(t, "c.bin", []byte{0x00})

	r, out := run(t, "detect", native, swapped, junk)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out, native+": Native\n"+swapped+": U16 Little Endian\n"+junk+": unrecognised\n")
}

func TestSwap(t *testing.T) {
	orig := makeROM(0x41)
	fn := writeROM(t, "gopher.z64", orig)
	out := filepath.Join(t.TempDir(), "gopher.v64")

	r, _ := run(t, "swap", "-to", "u16le", "-out", out, fn)
	test.DemandEquality(t, r, exitOK)

	d, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	s, ok := byteswap.Detect(d)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, byteswap.U16LittleEndian)

	// convert back in place
	r, _ = run(t, "swap", "-to", "native", "-yes", out)
	test.DemandEquality(t, r, exitOK)

	d, err = os.ReadFile(out)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(d, orig))

	// already native
	r, o := run(t, "swap", out)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.HasSuffix(o, "is already Native\n"), o)
}

func TestSwapErrors(t *testing.T) {
	odd := writeROM(t, "odd.z64", []byte{0x80, 0x37, 0x12, 0x40, 0x00})
	r, out := run(t, "swap", "-to", "u16le", "-yes", odd)
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectSuccess(t, strings.Contains(out, "Not an even length for swapping"), out)

	junk := writeROM(t, "junk.z64", []byte{0x00, 0x00, 0x00, 0x00})
	r, out = run(t, "swap", "-yes", junk)
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectSuccess(t, strings.Contains(out, "Unknown original byte swapping"), out)

	r, _ = run(t, "swap", "-to", "u32le", odd)
	test.ExpectEquality(t, r, exitModeError)

	r, _ = run(t, "swap", "-nosuchflag", odd)
	test.ExpectEquality(t, r, exitModeError)
}

func TestChecksum(t *testing.T) {
	fn := writeROM(t, "gopher.z64", makeROM(0x00))

	r, out := run(t, "checksum", fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out, "f8ca4ddc 303a4ddc\nheader does not match\n")

	short := writeROM(t, "short.z64", makeROM(0x00)[:layout.HeaderLen])
	r, out = run(t, "checksum", short)
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectSuccess(t, strings.Contains(out, "checksum: not long enough"), out)
}

func TestChecksumFix(t *testing.T) {
	// fix a byte swapped image. the output should remain byte swapped
	d := makeROM(0xff)
	test.DemandSuccess(t, byteswap.ConvertTo(byteswap.U16LittleEndian, d))
	fn := writeROM(t, "gopher.v64", d)

	r, out := run(t, "checksum", "-fix", "-yes", fn)
	test.DemandEquality(t, r, exitOK)
	test.ExpectEquality(t, out, "f8c24ddc c1544ddc\n")

	fixed, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	s, ok := byteswap.Detect(fixed)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, byteswap.U16LittleEndian)

	test.DemandSuccess(t, byteswap.ConvertTo(byteswap.Native, fixed))
	test.ExpectSuccess(t, checksum.Verify(fixed))
	test.ExpectEquality(t, binary.BigEndian.Uint32(fixed[layout.CRC1:]), 0xf8c24ddc)

	// and now the checksum mode reports no mismatch
	r, out = run(t, "checksum", fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out, "f8c24ddc c1544ddc\n")
}

func TestHeader(t *testing.T) {
	r, out := run(t, "header")
	test.DemandEquality(t, r, exitOK)
	test.DemandEquality(t, len(out), layout.HeaderLen)

	hdr, err := header.FromBytes([]byte(out))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr, header.NewRomHeader())

	fn := filepath.Join(t.TempDir(), "header.bin")
	r, _ = run(t, "header", "-name", "GOPHER", "-loadaddr", "0x80000400", "-cartid", "0x4e5a", "-out", fn)
	test.DemandEquality(t, r, exitOK)

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	hdr, err = header.FromBytes(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, hdr.Title(), "GOPHER")
	test.ExpectEquality(t, hdr.LoadAddr, 0x80000400)
	test.ExpectEquality(t, hdr.CartID, 0x4e5a)
	test.ExpectEquality(t, hdr.CartTiming, header.DefaultCartTiming)

	r, out = run(t, "header", "-cartid", "0x10000")
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectSuccess(t, strings.Contains(out, "too large for a 16 bit field"), out)

	r, _ = run(t, "header", "unexpected")
	test.ExpectEquality(t, r, exitModeError)

	// names that fill the field exactly are fine but longer names are not
	r, _ = run(t, "header", "-name", strings.Repeat("N", header.NameLen), "-out", filepath.Join(t.TempDir(), "h.bin"))
	test.ExpectEquality(t, r, exitOK)

	r, out = run(t, "header", "-name", strings.Repeat("N", header.NameLen+1))
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectSuccess(t, strings.Contains(out, "too long for the 20 byte name field"), out)
}

func TestScan(t *testing.T) {
	good := makeROM(0x41)
	_, _, err := checksum.Update(good)
	test.DemandSuccess(t, err)

	goodFn := writeROM(t, "good.z64", good)
	badFn := writeROM(t, "bad.z64", makeROM(0x41))
	shortFn := writeROM(t, "short.z64", []byte{0x37, 0x80, 0x40, 0x12})
	junkFn := writeROM(t, "junk.z64", []byte{0x00})

	r, out := run(t, "scan", goodFn, badFn, shortFn, junkFn)
	test.ExpectEquality(t, r, exitOK)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	test.DemandEquality(t, len(lines), 4)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], goodFn+": native crc ok "), lines[0])
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], badFn+": native crc bad "), lines[1])
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], shortFn+": u16 little endian crc short "), lines[2])
	test.ExpectSuccess(t, strings.HasPrefix(lines[3], junkFn+": unrecognised "), lines[3])

	r, _ = run(t, "scan")
	test.ExpectEquality(t, r, exitModeError)

	// without the statsview build tag the scan runs and returns as normal
	if !statsview.Available() {
		r, out = run(t, "scan", "-statsview", goodFn)
		test.ExpectEquality(t, r, exitOK)
		test.ExpectSuccess(t, strings.HasPrefix(out, "! stats server not available in this build\n"+goodFn+": native crc ok "), out)
	}
}

func TestVersion(t *testing.T) {
	r, out := run(t, "version")
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out, "n64cart "), out)
}

func TestOddLengthNative(t *testing.T) {
	// native images need no conversion so an odd length does not matter
	// provided the checksum window is complete
	d := append(makeROM(0x41), 0x00)
	_, _, err := checksum.Update(d)
	test.DemandSuccess(t, err)
	fn := writeROM(t, "odd.z64", d)

	r, out := run(t, "scan", fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.HasPrefix(out, fn+": native crc ok "), out)

	r, out = run(t, "info", fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, strings.Contains(out, "swapping:    Native\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "calculated:  fdcf52e1 cd5a4ddc\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "match:       true\n"), out)

	r, out = run(t, "checksum", fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out, "fdcf52e1 cd5a4ddc\n")

	// a byte swapped image of odd length still cannot be converted. scan
	// reports the reason rather than calling the image unrecognised
	d = append(makeROM(0x41), 0x00)
	test.DemandSuccess(t, byteswap.ConvertTo(byteswap.U16LittleEndian, d[:len(d)-1]))
	fn = writeROM(t, "odd.v64", d)

	r, out = run(t, "scan", fn)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectEquality(t, out, fn+": Not an even length for swapping\n")

	r, out = run(t, "checksum", fn)
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectSuccess(t, strings.Contains(out, "Not an even length for swapping"), out)
}
