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

// Package cartridgeloader is used to load cartridge images from a local file
// or over HTTP.
//
// The simplest use of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/gopher.z64")
//	err := cl.Load()
//
// After a successful Load() the Data field contains the image exactly as it
// was found. The byte swapping of the data is not changed. The Hash and
// Fingerprint fields identify the data and can be used to check that the
// correct image has been loaded.
package cartridgeloader
