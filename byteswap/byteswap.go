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

// Package byteswap detects and converts between the two byte orderings in
// which cartridge images are commonly dumped.
//
// The ordering is identified by the first four bytes of the image, which in
// native order are always the default cart timing word 0x80371240. An image
// dumped with every 16-bit unit byte-swapped starts 37 80 40 12.
//
// Conversion happens in place. The caller must have exclusive access to the
// data for the duration of the call.
package byteswap

import (
	"strings"

	"github.com/jetsetilly/n64cart/curated"
)

// ByteSwapping describes how the 16-bit units of an image have been ordered
// relative to the console's native big-endian form.
type ByteSwapping int

// List of valid ByteSwapping values.
const (
	Native ByteSwapping = iota
	U16LittleEndian
)

func (s ByteSwapping) String() string {
	switch s {
	case Native:
		return "Native"
	case U16LittleEndian:
		return "U16 Little Endian"
	}
	return "unknown"
}

// Sentinal error patterns.
const (
	UnknownSwapping = "Unknown original byte swapping"
	OddLength       = "Not an even length for swapping"
	UnknownName     = "byteswap: unknown byte swapping name (%s)"
)

// Parse returns the ByteSwapping for a name. Accepted names are "native" and
// "u16le", in any letter case.
func Parse(name string) (ByteSwapping, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "native", "z64":
		return Native, nil
	case "u16le", "v64":
		return U16LittleEndian, nil
	}
	return Native, curated.Errorf(UnknownName, name)
}

// Detect the byte swapping of data. The second return value is false if the
// byte swapping could not be identified, including when data is shorter than
// four bytes.
func Detect(data []byte) (ByteSwapping, bool) {
	if len(data) < 4 {
		return Native, false
	}

	switch {
	case data[0] == 0x80 && data[1] == 0x37 && data[2] == 0x12 && data[3] == 0x40:
		return Native, true
	case data[0] == 0x37 && data[1] == 0x80 && data[2] == 0x40 && data[3] == 0x12:
		return U16LittleEndian, true
	}

	return Native, false
}

// ConvertTo converts data in place so that it has the target byte swapping.
// Data that is already in the target byte swapping is left untouched.
//
// Returns an error with the UnknownSwapping pattern if the current byte
// swapping cannot be detected, and the OddLength pattern if data cannot be
// divided into 16-bit units. Data is not modified in either case.
func ConvertTo(target ByteSwapping, data []byte) error {
	current, ok := Detect(data)
	if !ok {
		return curated.Errorf(UnknownSwapping)
	}

	if len(data)%2 != 0 {
		return curated.Errorf(OddLength)
	}

	if current == target {
		return nil
	}

	for i := 0; i < len(data); i += 2 {
		data[i], data[i+1] = data[i+1], data[i]
	}

	return nil
}
