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

// Package checksum calculates the two boot checksum words of a cartridge
// image. The boot code of the console calculates the same values over the
// checksum window (see the layout package) and compares them against the
// words stored at offsets 0x10 and 0x14 of the header.
//
// The calculation is not cryptographic and makes no claim to any
// distribution or collision properties. It must however be bit exact.
//
// Data must be in native byte order. An image with any other byte swapping
// should be converted with the byteswap package first.
//
//	crc1, crc2, err := checksum.Calculate(data)
//	if curated.Is(err, checksum.NotLongEnough) {
//		...
//	}
//
// Verify() compares the calculated words against those in the header and
// Update() writes the calculated words into the header.
package checksum
