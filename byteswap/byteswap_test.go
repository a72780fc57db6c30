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

package byteswap_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/n64cart/byteswap"
	"github.com/jetsetilly/n64cart/curated"
	"github.com/jetsetilly/n64cart/test"
)

var nativeMagic = []byte{0x80, 0x37, 0x12, 0x40}
var swappedMagic = []byte{0x37, 0x80, 0x40, 0x12}

func TestDetect(t *testing.T) {
	// too short
	for _, d := range [][]byte{nil, {}, {0x80}, {0x80, 0x37, 0x12}} {
		_, ok := byteswap.Detect(d)
		test.ExpectFailure(t, ok, len(d))
	}

	s, ok := byteswap.Detect(nativeMagic)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, byteswap.Native)

	s, ok = byteswap.Detect(swappedMagic)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, byteswap.U16LittleEndian)

	// only the first four bytes matter
	s, ok = byteswap.Detect(append(append([]byte{}, swappedMagic...), 0xff, 0xfe, 0xfd))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, byteswap.U16LittleEndian)

	// unrecognised prefixes, including a fully reversed (32-bit little
	// endian) word which is not supported
	for _, d := range [][]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0x40, 0x12, 0x37, 0x80},
		{0x80, 0x37, 0x12, 0x41},
		{0x37, 0x80, 0x12, 0x40},
	} {
		_, ok := byteswap.Detect(d)
		test.ExpectFailure(t, ok, d)
	}
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, byteswap.Native.String(), "Native")
	test.ExpectEquality(t, byteswap.U16LittleEndian.String(), "U16 Little Endian")
}

func TestParse(t *testing.T) {
	s, err := byteswap.Parse("NATIVE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, byteswap.Native)

	s, err = byteswap.Parse(" u16le ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, byteswap.U16LittleEndian)

	_, err = byteswap.Parse("u32le")
	test.ExpectSuccess(t, curated.Is(err, byteswap.UnknownName))
}

func TestConvertUnknown(t *testing.T) {
	d := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	err := byteswap.ConvertTo(byteswap.Native, d)
	test.ExpectSuccess(t, curated.Is(err, byteswap.UnknownSwapping))
	test.ExpectEquality(t, err.Error(), "Unknown original byte swapping")
	test.ExpectEquality(t, string(d), string([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}))

	// short data is unrecognised rather than an odd length
	err = byteswap.ConvertTo(byteswap.Native, []byte{0x80, 0x37, 0x12})
	test.ExpectSuccess(t, curated.Is(err, byteswap.UnknownSwapping))
}

func TestConvertOddLength(t *testing.T) {
	for _, magic := range [][]byte{nativeMagic, swappedMagic} {
		for _, target := range []byte{0, 1} {
			d := append(append([]byte{}, magic...), 0xaa)
			orig := append([]byte{}, d...)

			err := byteswap.ConvertTo(byteswap.ByteSwapping(target), d)
			test.ExpectSuccess(t, curated.Is(err, byteswap.OddLength))
			test.ExpectEquality(t, err.Error(), "Not an even length for swapping")
			test.ExpectSuccess(t, bytes.Equal(d, orig))
		}
	}
}

func TestConvertNoop(t *testing.T) {
	d := append(append([]byte{}, nativeMagic...), 0x01, 0x02)
	test.ExpectSuccess(t, byteswap.ConvertTo(byteswap.Native, d))
	test.ExpectSuccess(t, bytes.Equal(d, []byte{0x80, 0x37, 0x12, 0x40, 0x01, 0x02}))

	d = append(append([]byte{}, swappedMagic...), 0x01, 0x02)
	test.ExpectSuccess(t, byteswap.ConvertTo(byteswap.U16LittleEndian, d))
	test.ExpectSuccess(t, bytes.Equal(d, []byte{0x37, 0x80, 0x40, 0x12, 0x01, 0x02}))
}

func TestConvert(t *testing.T) {
	d := []byte{0x37, 0x80, 0x40, 0x12, 0x01, 0x02, 0x03, 0x04}
	test.ExpectSuccess(t, byteswap.ConvertTo(byteswap.Native, d))
	test.ExpectSuccess(t, bytes.Equal(d, []byte{0x80, 0x37, 0x12, 0x40, 0x02, 0x01, 0x04, 0x03}))

	s, ok := byteswap.Detect(d)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, byteswap.Native)
}

func TestInvolution(t *testing.T) {
	for _, magic := range [][]byte{nativeMagic, swappedMagic} {
		d := make([]byte, 1024)
		copy(d, magic)
		for i := len(magic); i < len(d); i++ {
			d[i] = byte(i * 7)
		}
		orig := append([]byte{}, d...)

		s, ok := byteswap.Detect(orig)
		test.DemandSuccess(t, ok)

		other := byteswap.Native
		if s == byteswap.Native {
			other = byteswap.U16LittleEndian
		}

		test.DemandSuccess(t, byteswap.ConvertTo(other, d))
		test.ExpectFailure(t, bytes.Equal(d, orig), s)

		swapped, ok := byteswap.Detect(d)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, swapped, other)

		test.DemandSuccess(t, byteswap.ConvertTo(s, d))
		test.ExpectSuccess(t, bytes.Equal(d, orig), s)
	}
}
