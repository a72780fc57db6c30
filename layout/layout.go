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

// Package layout defines the fixed regions of a cartridge ROM image. All
// values are byte offsets or lengths from the start of the image and are
// never derived from the contents of an image.
//
//	region      start    length
//	header      0x0000   0x40
//	boot code   0x0040   0xfc0
//	load        0x1000   0x100000 (the checksum window)
package layout

// Header region.
const (
	HeaderStart = 0
	HeaderLen   = 64
	HeaderEnd   = HeaderStart + HeaderLen
)

// Boot code region. The boot code follows the header and fills the remainder
// of the first 4KiB of the image.
const (
	BootCodeStart = HeaderEnd
	BootCodeLen   = 4096 - HeaderLen
	BootCodeEnd   = BootCodeStart + BootCodeLen
)

// Load region. Only the first LoadLen bytes of the load region are of
// interest to this package. Images are usually much larger.
const (
	LoadStart = HeaderLen + BootCodeLen
	LoadLen   = 0x100000
)

// The checksum window is the entire LoadLen portion of the load region.
const (
	ChecksumStart = BootCodeEnd
	ChecksumLen   = LoadLen
	ChecksumEnd   = ChecksumStart + ChecksumLen
)

// RomLen is the minimum length of an image that covers every region.
const RomLen = HeaderLen + BootCodeLen + LoadLen

// Offsets of the two checksum words within the header region.
const (
	CRC1 = 0x10
	CRC2 = 0x14
)
