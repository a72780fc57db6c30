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

package cartridgeloader

import (
	"path/filepath"
	"strings"

	"github.com/jetsetilly/n64cart/byteswap"
)

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".Z64", ".V64", ".BIN", ".ROM"}

// recognisedExtension returns true if the filename has one of the extensions
// in FileExtensions. Letter case is ignored.
func recognisedExtension(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// extensionHint returns the byte swapping that is conventionally implied by
// the filename extension.
func extensionHint(filename string) (byteswap.ByteSwapping, bool) {
	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".Z64":
		return byteswap.Native, true
	case ".V64":
		return byteswap.U16LittleEndian, true
	}
	return byteswap.Native, false
}
