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

// Package header models the 64 byte header found at the start of a cartridge
// ROM image.
//
// A RomHeader is created with NewRomHeader(), which fills in the default
// cart timing and clock rate. The fields can then be changed freely before
// the header is written with Serialize():
//
//	hdr := header.NewRomHeader()
//	hdr.LoadAddr = 0x80000400
//	hdr.SetTitle("GOPHER")
//	err := hdr.Serialize(w)
//
// Every multi-byte field is written big-endian, in the order the fields are
// declared in the RomHeader type. The name field is written verbatim.
//
// FromBytes() is the inverse of Serialize(). It requires the data to be in
// native byte order. See the byteswap package for how to normalise an image
// before reading the header.
package header
