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

//go:build !(linux || darwin || freebsd || netbsd || openbsd)
// +build !linux,!darwin,!freebsd,!netbsd,!openbsd

package confirm

import (
	"io"
	"os"
)

// Ask writes the prompt to output and reads the answer from standard input.
func Ask(output io.Writer, prompt string) (bool, error) {
	return Confirm(os.Stdin, output, prompt)
}
