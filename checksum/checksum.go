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

package checksum

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/bits"

	"github.com/jetsetilly/n64cart/curated"
	"github.com/jetsetilly/n64cart/layout"
)

// Sentinal error patterns.
const (
	NotLongEnough      = "checksum: not long enough (%d bytes, need %d)"
	ErrorReadingBuffer = "checksum: error reading buffer: %v"
	Mismatch           = "checksum: mismatch (header %08x %08x, calculated %08x %08x)"
)

// the value each of the six accumulators starts with
const seed uint32 = 0xf8ca4ddc

// Calculate the two checksum words for the data. Only the checksum window is
// read but data must be long enough to contain it.
func Calculate(data []byte) (uint32, uint32, error) {
	if len(data) < layout.ChecksumEnd {
		return 0, 0, curated.Errorf(NotLongEnough, len(data), layout.ChecksumEnd)
	}

	r := bytes.NewReader(data[layout.ChecksumStart:layout.ChecksumEnd])
	var word [4]byte

	t1 := seed
	t2 := seed
	t3 := seed
	t4 := seed
	t5 := seed
	t6 := seed

	for i := 0; i < layout.ChecksumLen/4; i++ {
		if _, err := io.ReadFull(r, word[:]); err != nil {
			return 0, 0, curated.Errorf(ErrorReadingBuffer, err)
		}
		c1 := binary.BigEndian.Uint32(word[:])

		// the only place where overflow matters. detected by the result being
		// smaller than the value added to
		k1 := t6 + c1
		if k1 < t6 {
			t4++
		}
		t6 = k1

		t3 ^= c1

		k2 := c1 & 0x1f
		k1 = bits.RotateLeft32(c1, int(k2))
		t5 += k1

		if c1 < t2 {
			t2 ^= k1
		} else {
			t2 ^= t6 ^ c1
		}

		t1 += c1 ^ t5
	}

	return t6 ^ t4 ^ t3, t5 ^ t2 ^ t1, nil
}

// Verify returns nil if the checksum words in the header match the
// calculated checksum. A difference is reported with the Mismatch pattern.
func Verify(data []byte) error {
	crc1, crc2, err := Calculate(data)
	if err != nil {
		return err
	}

	hcrc1 := binary.BigEndian.Uint32(data[layout.CRC1:])
	hcrc2 := binary.BigEndian.Uint32(data[layout.CRC2:])

	if hcrc1 != crc1 || hcrc2 != crc2 {
		return curated.Errorf(Mismatch, hcrc1, hcrc2, crc1, crc2)
	}

	return nil
}

// Update calculates the checksum and writes it into the header, in place.
// The calculated words are also returned.
func Update(data []byte) (uint32, uint32, error) {
	crc1, crc2, err := Calculate(data)
	if err != nil {
		return 0, 0, err
	}

	binary.BigEndian.PutUint32(data[layout.CRC1:], crc1)
	binary.BigEndian.PutUint32(data[layout.CRC2:], crc2)

	return crc1, crc2, nil
}
