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

// Package confirm asks the user a yes/no question before a destructive
// operation, such as overwriting a cartridge image in place.
//
// Ask() uses the controlling terminal in raw mode so that a single keypress
// answers the question. If there is no terminal (or on platforms where raw
// mode is not supported) the answer is read a line at a time from standard
// input. Confirm() is the line based method and can be used directly with
// any io.Reader.
package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes the prompt to output and reads a line from input. Returns
// true if the line begins with 'y' or 'Y'. An empty input is a negative
// answer.
func Confirm(input io.Reader, output io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(output, "%s [y/N] ", prompt)

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	return isYes(line), nil
}

func isYes(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) > 0 && (s[0] == 'y' || s[0] == 'Y')
}
