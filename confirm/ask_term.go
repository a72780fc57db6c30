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

//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

package confirm

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term"
)

// Ask writes the prompt to output and waits for a single keypress on the
// controlling terminal.
func Ask(output io.Writer, prompt string) (bool, error) {
	t, err := term.Open("/dev/tty")
	if err != nil {
		// no controlling terminal
		return Confirm(os.Stdin, output, prompt)
	}
	defer t.Close()

	fmt.Fprintf(output, "%s [y/N] ", prompt)

	if err := term.RawMode(t); err != nil {
		return false, err
	}

	b := make([]byte, 1)
	_, err = t.Read(b)

	// restore before checking the read error so the terminal is not left in
	// raw mode
	if rerr := t.Restore(); rerr != nil && err == nil {
		err = rerr
	}
	fmt.Fprintln(output)

	if err != nil {
		return false, err
	}

	return isYes(string(b)), nil
}
